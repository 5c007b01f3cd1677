package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes MedSys relies on. The unique index on
// pacientes.cpf is what turns a repeated registration into a duplicate-key
// error. Creating an index that already exists is a no-op on the server.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionPatients: {
			{Keys: bson.D{{Key: "cpf", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "nome", Value: 1}}},
		},
		CollectionDoctors: {
			{Keys: bson.D{{Key: "crm", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "especialidade", Value: 1}}},
		},
		CollectionAppointments: {
			{Keys: bson.D{{Key: "pacienteId", Value: 1}, {Key: "dataHora", Value: 1}}},
			{Keys: bson.D{{Key: "medicoId", Value: 1}, {Key: "dataHora", Value: 1}}},
			{Keys: bson.D{{Key: "dataHora", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}

	for name, models := range indexes {
		created, err := db.collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
		db.log.Debug("Indexes ensured", zap.String("collection", name), zap.Strings("indexes", created))
	}
	return nil
}
