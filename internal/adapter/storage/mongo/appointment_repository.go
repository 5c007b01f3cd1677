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

type AppointmentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewAppointmentRepository(db *DB, log *zap.Logger) ports.AppointmentRepository {
	return &AppointmentRepository{
		coll: db.collection(CollectionAppointments),
		log:  log,
	}
}

// appointmentDocument is the read shape of consultas: dataHora is kept raw
// because older imports stored it as text.
type appointmentDocument struct {
	ID         bson.ObjectID            `bson:"_id"`
	PatientID  bson.ObjectID            `bson:"pacienteId"`
	DoctorID   bson.ObjectID            `bson:"medicoId"`
	DataHora   bson.RawValue            `bson:"dataHora"`
	Reason     string                   `bson:"motivo"`
	Status     domain.AppointmentStatus `bson:"status"`
	Fee        float64                  `bson:"valorConsulta"`
	Notes      string                   `bson:"observacoes"`
	CancelNote string                   `bson:"justificativaCancelamento"`
	CreatedAt  time.Time                `bson:"dataCriacao"`
	UpdatedAt  time.Time                `bson:"dataAtualizacao"`
}

func (d *appointmentDocument) toDomain() domain.Appointment {
	a := domain.Appointment{
		ID:         d.ID,
		PatientID:  d.PatientID,
		DoctorID:   d.DoctorID,
		Reason:     d.Reason,
		Status:     d.Status,
		Fee:        d.Fee,
		Notes:      d.Notes,
		CancelNote: d.CancelNote,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if ms, ok := d.DataHora.DateTimeOK(); ok {
		a.ScheduledAt = time.UnixMilli(ms)
	} else if s, ok := d.DataHora.StringValueOK(); ok {
		a.ScheduledAtText = s
	}
	return a
}

// Save inserts a new appointment and sets its ID.
func (r *AppointmentRepository) Save(ctx context.Context, appointment *domain.Appointment) error {
	defer telemetry.ObserveDatabase("consultas.insert", time.Now())

	res, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return translateWriteError(CollectionAppointments, err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		appointment.ID = id
	}
	return nil
}

// FindAll returns every appointment, latest dataHora first.
func (r *AppointmentRepository) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	defer telemetry.ObserveDatabase("consultas.find", time.Now())

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "dataHora", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	appointments := []domain.Appointment{}
	for cur.Next(ctx) {
		var doc appointmentDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode consulta: %w", err)
		}
		appointments = append(appointments, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	defer telemetry.ObserveDatabase("consultas.count", time.Now())
	return r.coll.CountDocuments(ctx, bson.D{{Key: "status", Value: status}})
}
