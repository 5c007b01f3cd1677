package clinic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/adapter/queue"
	"github.com/seu-repo/medsys/internal/domain"
	"github.com/seu-repo/medsys/internal/observability/telemetry"
	"github.com/seu-repo/medsys/internal/ports"
)

type Service struct {
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	appointments ports.AppointmentRepository
	mq           queue.MessageQueue
	now          func() time.Time
	log          *zap.Logger
}

type Option func(*Service)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	appointments ports.AppointmentRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
	opts ...Option,
) ports.ClinicService {
	s := &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		mq:           mq,
		now:          time.Now,
		log:          log,
	}
	if s.mq == nil {
		s.mq = queue.NewNoopQueue()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListDoctors returns active doctors, optionally restricted to one specialty.
func (s *Service) ListDoctors(ctx context.Context, specialty string) ([]domain.Doctor, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.ListDoctors", attribute.String("specialty", specialty))
	defer span.End()

	doctors, err := s.doctors.FindActive(ctx, strings.TrimSpace(specialty))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) ListAllDoctors(ctx context.Context) ([]domain.Doctor, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.ListAllDoctors")
	defer span.End()

	doctors, err := s.doctors.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.ListPatients")
	defer span.End()

	patients, err := s.patients.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// ListAppointments returns every appointment, most recent first. Dates that
// were stored as text are re-read with the legacy layout; values that still
// do not parse are left as text.
func (s *Service) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.ListAppointments")
	defer span.End()

	appointments, err := s.appointments.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	for i := range appointments {
		a := &appointments[i]
		if a.HasSchedule() || a.ScheduledAtText == "" {
			continue
		}
		if t, ok := domain.ParseLegacyDateTime(a.ScheduledAtText); ok {
			a.ScheduledAt = t
			a.ScheduledAtText = ""
			continue
		}
		s.log.Debug("Unparseable appointment date left as text",
			zap.String("appointment_id", a.ID.Hex()),
			zap.String("dataHora", a.ScheduledAtText),
		)
	}
	return appointments, nil
}

// RegisterPatient validates input and inserts a new active patient. Invalid
// input never reaches the store.
func (s *Service) RegisterPatient(ctx context.Context, input domain.PatientInput) (*domain.Patient, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.RegisterPatient")
	defer span.End()

	patient, err := s.buildPatient(input)
	if err != nil {
		telemetry.PatientsRegisteredTotal.WithLabelValues("invalid").Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.patients.Save(ctx, patient); err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrDuplicateKey) {
			telemetry.PatientsRegisteredTotal.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		telemetry.PatientsRegisteredTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("save patient: %w", err)
	}

	telemetry.PatientsRegisteredTotal.WithLabelValues("created").Inc()
	s.log.Info("Patient registered", zap.String("patient_id", patient.ID.Hex()))
	s.publish(queue.SubjectPatientRegistered, patientRegisteredEvent(patient, s.now()))
	return patient, nil
}

func (s *Service) buildPatient(input domain.PatientInput) (*domain.Patient, error) {
	cpf, err := domain.ValidateCPF(input.CPF)
	if err != nil {
		return nil, err
	}
	birthDate, err := domain.ParseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	patient := &domain.Patient{
		Name:         input.Name,
		CPF:          cpf,
		Phone:        input.Phone,
		BirthDate:    birthDate,
		Notes:        input.Notes,
		Active:       true,
		RegisteredAt: s.now(),
	}
	if !domain.IsBlank(input.Email) {
		email := input.Email
		patient.Email = &email
	}
	if !input.Address.IsEmpty() {
		address := input.Address
		patient.Address = &address
	}
	return patient, nil
}

// FindPatientByCPF returns (nil, nil) when no patient has exactly that CPF.
func (s *Service) FindPatientByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.FindPatientByCPF")
	defer span.End()

	patient, err := s.patients.FindByCPF(ctx, cpf)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return patient, nil
}

// FindDoctorByCRM returns (nil, nil) when no doctor has that license number.
func (s *Service) FindDoctorByCRM(ctx context.Context, crm string) (*domain.Doctor, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.FindDoctorByCRM", attribute.String("crm", crm))
	defer span.End()

	doctor, err := s.doctors.FindByCRM(ctx, crm)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return doctor, nil
}

// ScheduleAppointment looks up the patient and the doctor, then inserts an
// appointment in the scheduled state. The lookups and the insert are not
// atomic.
func (s *Service) ScheduleAppointment(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.ScheduleAppointment", attribute.String("crm", input.DoctorCRM))
	defer span.End()

	patient, err := s.FindPatientByCPF(ctx, input.PatientCPF)
	if err != nil {
		return scheduleFailed(span, "error", err)
	}
	if patient == nil {
		return scheduleFailed(span, "patient_not_found", domain.ErrPatientNotFound)
	}

	doctor, err := s.FindDoctorByCRM(ctx, input.DoctorCRM)
	if err != nil {
		return scheduleFailed(span, "error", err)
	}
	if doctor == nil {
		return scheduleFailed(span, "doctor_not_found", domain.ErrDoctorNotFound)
	}

	return s.insertAppointment(ctx, span, patient, doctor, input)
}

// BookAppointment inserts a scheduled appointment for a patient and doctor the
// caller already loaded. input.PatientCPF and input.DoctorCRM are ignored.
func (s *Service) BookAppointment(ctx context.Context, patient *domain.Patient, doctor *domain.Doctor, input domain.AppointmentInput) (*domain.Appointment, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.BookAppointment")
	defer span.End()

	if patient == nil {
		return scheduleFailed(span, "patient_not_found", domain.ErrPatientNotFound)
	}
	if doctor == nil {
		return scheduleFailed(span, "doctor_not_found", domain.ErrDoctorNotFound)
	}
	span.SetAttributes(attribute.String("crm", doctor.CRM))

	return s.insertAppointment(ctx, span, patient, doctor, input)
}

func (s *Service) insertAppointment(ctx context.Context, span trace.Span, patient *domain.Patient, doctor *domain.Doctor, input domain.AppointmentInput) (*domain.Appointment, error) {
	scheduledAt, err := domain.ParseAppointmentTime(input.ScheduledAt)
	if err != nil {
		return scheduleFailed(span, "invalid", err)
	}

	now := s.now()
	appointment := &domain.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		ScheduledAt: scheduledAt,
		Reason:      input.Reason,
		Status:      domain.AppointmentStatusScheduled,
		Fee:         input.Fee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.appointments.Save(ctx, appointment); err != nil {
		return scheduleFailed(span, "error", fmt.Errorf("save appointment: %w", err))
	}

	telemetry.AppointmentsScheduledTotal.WithLabelValues("created").Inc()
	s.log.Info("Appointment scheduled",
		zap.String("appointment_id", appointment.ID.Hex()),
		zap.String("crm", doctor.CRM),
		zap.Time("dataHora", scheduledAt),
	)
	s.publish(queue.SubjectAppointmentScheduled, appointmentScheduledEvent(appointment, patient, doctor, now))
	return appointment, nil
}

func scheduleFailed(span trace.Span, result string, err error) (*domain.Appointment, error) {
	telemetry.AppointmentsScheduledTotal.WithLabelValues(result).Inc()
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "clinic.Dashboard")
	defer span.End()

	var stats domain.DashboardStats
	var err error

	if stats.ActivePatients, err = s.patients.CountActive(ctx); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("count patients: %w", err)
	}
	if stats.ActiveDoctors, err = s.doctors.CountActive(ctx); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("count doctors: %w", err)
	}
	if stats.ScheduledAppointments, err = s.appointments.CountByStatus(ctx, domain.AppointmentStatusScheduled); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	if stats.DoctorsBySpecialty, err = s.doctors.CountBySpecialty(ctx); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("group doctors: %w", err)
	}
	return &stats, nil
}
