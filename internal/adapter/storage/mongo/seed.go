package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
)

// SampleDoctors are the doctors provisioned by the clinic's bootstrap script.
func SampleDoctors(now time.Time) []domain.Doctor {
	return []domain.Doctor{
		{
			Name:      "Dr. João Silva",
			CRM:       "12345-SP",
			Specialty: "Cardiologia",
			Phone:     "(11) 98765-4321",
			Email:     "joao.silva@medsys.com",
			OfficeHours: []domain.OfficeHours{
				{Weekday: 1, Start: "08:00", End: "12:00"},
				{Weekday: 3, Start: "14:00", End: "18:00"},
				{Weekday: 5, Start: "08:00", End: "12:00"},
			},
			Active:       true,
			RegisteredAt: &now,
		},
		{
			Name:      "Dra. Maria Santos",
			CRM:       "67890-SP",
			Specialty: "Pediatria",
			Phone:     "(11) 91234-5678",
			Email:     "maria.santos@medsys.com",
			OfficeHours: []domain.OfficeHours{
				{Weekday: 2, Start: "09:00", End: "13:00"},
				{Weekday: 4, Start: "14:00", End: "18:00"},
			},
			Active:       true,
			RegisteredAt: &now,
		},
	}
}

// SeedDoctors inserts doctors only when the medicos collection is empty, and
// reports how many were inserted.
func (db *DB) SeedDoctors(ctx context.Context, doctors []domain.Doctor) (int, error) {
	coll := db.collection(CollectionDoctors)

	existing, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count medicos: %w", err)
	}
	if existing > 0 {
		db.log.Info("Skipping doctor seed, collection not empty", zap.Int64("existing", existing))
		return 0, nil
	}

	docs := make([]interface{}, 0, len(doctors))
	for i := range doctors {
		docs = append(docs, doctors[i])
	}
	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, translateWriteError(CollectionDoctors, err)
	}
	db.log.Info("Seeded doctors", zap.Int("inserted", len(res.InsertedIDs)))
	return len(res.InsertedIDs), nil
}
