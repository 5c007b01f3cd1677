package ports

import (
	"context"

	"github.com/seu-repo/medsys/internal/domain"
)

// ClinicService is shared by the console and the web dashboard.
type ClinicService interface {
	ListDoctors(ctx context.Context, specialty string) ([]domain.Doctor, error)
	ListAllDoctors(ctx context.Context) ([]domain.Doctor, error)
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	RegisterPatient(ctx context.Context, input domain.PatientInput) (*domain.Patient, error)
	FindPatientByCPF(ctx context.Context, cpf string) (*domain.Patient, error)
	FindDoctorByCRM(ctx context.Context, crm string) (*domain.Doctor, error)
	ScheduleAppointment(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error)
	BookAppointment(ctx context.Context, patient *domain.Patient, doctor *domain.Doctor, input domain.AppointmentInput) (*domain.Appointment, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
