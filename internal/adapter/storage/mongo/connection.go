package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names, in Portuguese as the existing databases use them.
const (
	CollectionPatients     = "pacientes"
	CollectionDoctors      = "medicos"
	CollectionAppointments = "consultas"
)

// DB owns the process-wide MongoDB client.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
	log      *zap.Logger
}

// NewConnection connects to MongoDB and verifies the server is reachable.
func NewConnection(ctx context.Context, uri, database string, log *zap.Logger) (*DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetAppName("medsys"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("Successfully connected to MongoDB", zap.String("database", database))
	return &DB{
		Client:   client,
		Database: client.Database(database),
		log:      log,
	}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// MissingCollections lists the clinic collections not yet created in the
// database.
func (db *DB) MissingCollections(ctx context.Context) ([]string, error) {
	names, err := db.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	existing := make(map[string]bool, len(names))
	for _, n := range names {
		existing[n] = true
	}

	var missing []string
	for _, want := range []string{CollectionAppointments, CollectionDoctors, CollectionPatients} {
		if !existing[want] {
			missing = append(missing, want)
		}
	}
	return missing, nil
}
