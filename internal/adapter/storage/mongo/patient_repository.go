package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
	"github.com/seu-repo/medsys/internal/observability/telemetry"
	"github.com/seu-repo/medsys/internal/ports"
)

type PatientRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPatientRepository(db *DB, log *zap.Logger) ports.PatientRepository {
	return &PatientRepository{
		coll: db.collection(CollectionPatients),
		log:  log,
	}
}

// Save inserts a new patient and sets its ID.
func (r *PatientRepository) Save(ctx context.Context, patient *domain.Patient) error {
	defer telemetry.ObserveDatabase("pacientes.insert", time.Now())

	res, err := r.coll.InsertOne(ctx, patient)
	if err != nil {
		return translateWriteError(CollectionPatients, err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		patient.ID = id
	}
	return nil
}

func (r *PatientRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	defer telemetry.ObserveDatabase("pacientes.find_one", time.Now())

	var patient domain.Patient
	err := r.coll.FindOne(ctx, bson.D{{Key: "cpf", Value: cpf}}).Decode(&patient)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindAll returns every patient sorted by name.
func (r *PatientRepository) FindAll(ctx context.Context) ([]domain.Patient, error) {
	defer telemetry.ObserveDatabase("pacientes.find", time.Now())

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
	if err != nil {
		return nil, err
	}
	patients := []domain.Patient{}
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode pacientes: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) CountActive(ctx context.Context) (int64, error) {
	defer telemetry.ObserveDatabase("pacientes.count", time.Now())
	return r.coll.CountDocuments(ctx, bson.D{{Key: "ativo", Value: true}})
}
