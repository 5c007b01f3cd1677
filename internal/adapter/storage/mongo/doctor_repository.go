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

type DoctorRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewDoctorRepository(db *DB, log *zap.Logger) ports.DoctorRepository {
	return &DoctorRepository{
		coll: db.collection(CollectionDoctors),
		log:  log,
	}
}

func (r *DoctorRepository) FindByCRM(ctx context.Context, crm string) (*domain.Doctor, error) {
	defer telemetry.ObserveDatabase("medicos.find_one", time.Now())

	var doctor domain.Doctor
	err := r.coll.FindOne(ctx, bson.D{{Key: "crm", Value: crm}}).Decode(&doctor)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindActive returns active doctors in store order, restricted to specialty
// when it is not empty.
func (r *DoctorRepository) FindActive(ctx context.Context, specialty string) ([]domain.Doctor, error) {
	defer telemetry.ObserveDatabase("medicos.find", time.Now())

	filter := bson.D{{Key: "ativo", Value: true}}
	if specialty != "" {
		filter = append(filter, bson.E{Key: "especialidade", Value: specialty})
	}
	return r.find(ctx, filter)
}

// FindAll returns every doctor sorted by name.
func (r *DoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	defer telemetry.ObserveDatabase("medicos.find", time.Now())
	return r.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
}

func (r *DoctorRepository) find(ctx context.Context, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]domain.Doctor, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	doctors := []domain.Doctor{}
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode medicos: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) CountActive(ctx context.Context) (int64, error) {
	defer telemetry.ObserveDatabase("medicos.count", time.Now())
	return r.coll.CountDocuments(ctx, bson.D{{Key: "ativo", Value: true}})
}

// CountBySpecialty groups every doctor, active or not, by specialty.
func (r *DoctorRepository) CountBySpecialty(ctx context.Context) ([]domain.SpecialtyCount, error) {
	defer telemetry.ObserveDatabase("medicos.aggregate", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$especialidade"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	counts := []domain.SpecialtyCount{}
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode specialty counts: %w", err)
	}
	return counts, nil
}
