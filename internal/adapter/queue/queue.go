package queue

// MessageQueue publishes domain events to a broker.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Close() error
}

// Subjects published by MedSys.
const (
	SubjectPatientRegistered    = "medsys.patient.registered"
	SubjectAppointmentScheduled = "medsys.appointment.scheduled"
)
