package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "agendada"
	AppointmentStatusConfirmed AppointmentStatus = "confirmada"
	AppointmentStatusDone      AppointmentStatus = "realizada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
	AppointmentStatusNoShow    AppointmentStatus = "faltou"
)

// Valid reports whether s is one of the statuses accepted by the consultas collection.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusDone,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	ID          bson.ObjectID     `json:"id" bson:"_id,omitempty"`
	PatientID   bson.ObjectID     `json:"pacienteId" bson:"pacienteId"`
	DoctorID    bson.ObjectID     `json:"medicoId" bson:"medicoId"`
	ScheduledAt time.Time         `json:"dataHora" bson:"dataHora"`
	Reason      string            `json:"motivo" bson:"motivo"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	Fee         float64           `json:"valorConsulta" bson:"valorConsulta"`
	Notes       string            `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	CancelNote  string            `json:"justificativaCancelamento,omitempty" bson:"justificativaCancelamento,omitempty"`
	CreatedAt   time.Time         `json:"dataCriacao" bson:"dataCriacao"`
	UpdatedAt   time.Time         `json:"dataAtualizacao" bson:"dataAtualizacao"`

	// ScheduledAtText holds dataHora when it was stored as text by an older
	// import and could not be read as a date. Never persisted.
	ScheduledAtText string `json:"-" bson:"-"`
}

// HasSchedule reports whether ScheduledAt holds a usable date.
func (a Appointment) HasSchedule() bool {
	return !a.ScheduledAt.IsZero()
}

// AppointmentInput carries the console values used to schedule an appointment.
type AppointmentInput struct {
	PatientCPF  string
	DoctorCRM   string
	ScheduledAt string // YYYY-MM-DD HH:MM
	Reason      string
	Fee         float64
}
