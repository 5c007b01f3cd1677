package ports

import (
	"context"

	"github.com/seu-repo/medsys/internal/domain"
)

type PatientRepository interface {
	Save(ctx context.Context, patient *domain.Patient) error
	FindByCPF(ctx context.Context, cpf string) (*domain.Patient, error)
	FindAll(ctx context.Context) ([]domain.Patient, error)
	CountActive(ctx context.Context) (int64, error)
}

// DoctorRepository is read-only: doctors are provisioned outside of MedSys.
type DoctorRepository interface {
	FindByCRM(ctx context.Context, crm string) (*domain.Doctor, error)
	FindActive(ctx context.Context, specialty string) ([]domain.Doctor, error)
	FindAll(ctx context.Context) ([]domain.Doctor, error)
	CountActive(ctx context.Context) (int64, error)
	CountBySpecialty(ctx context.Context) ([]domain.SpecialtyCount, error)
}

type AppointmentRepository interface {
	Save(ctx context.Context, appointment *domain.Appointment) error
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error)
}
