package mocks

import (
	"context"

	"github.com/seu-repo/medsys/internal/domain"
)

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	SaveFunc        func(ctx context.Context, patient *domain.Patient) error
	FindByCPFFunc   func(ctx context.Context, cpf string) (*domain.Patient, error)
	FindAllFunc     func(ctx context.Context) ([]domain.Patient, error)
	CountActiveFunc func(ctx context.Context) (int64, error)

	SaveCalls int
}

func (m *MockPatientRepository) Save(ctx context.Context, patient *domain.Patient) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	if m.FindByCPFFunc != nil {
		return m.FindByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]domain.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Patient{}, nil
}

func (m *MockPatientRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

// MockDoctorRepository is a mock implementation of DoctorRepository
type MockDoctorRepository struct {
	FindByCRMFunc        func(ctx context.Context, crm string) (*domain.Doctor, error)
	FindActiveFunc       func(ctx context.Context, specialty string) ([]domain.Doctor, error)
	FindAllFunc          func(ctx context.Context) ([]domain.Doctor, error)
	CountActiveFunc      func(ctx context.Context) (int64, error)
	CountBySpecialtyFunc func(ctx context.Context) ([]domain.SpecialtyCount, error)
}

func (m *MockDoctorRepository) FindByCRM(ctx context.Context, crm string) (*domain.Doctor, error) {
	if m.FindByCRMFunc != nil {
		return m.FindByCRMFunc(ctx, crm)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindActive(ctx context.Context, specialty string) ([]domain.Doctor, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, specialty)
	}
	return []domain.Doctor{}, nil
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Doctor{}, nil
}

func (m *MockDoctorRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

func (m *MockDoctorRepository) CountBySpecialty(ctx context.Context) ([]domain.SpecialtyCount, error) {
	if m.CountBySpecialtyFunc != nil {
		return m.CountBySpecialtyFunc(ctx)
	}
	return []domain.SpecialtyCount{}, nil
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	SaveFunc          func(ctx context.Context, appointment *domain.Appointment) error
	FindAllFunc       func(ctx context.Context) ([]domain.Appointment, error)
	CountByStatusFunc func(ctx context.Context, status domain.AppointmentStatus) (int64, error)

	SaveCalls int
}

func (m *MockAppointmentRepository) Save(ctx context.Context, appointment *domain.Appointment) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Appointment{}, nil
}

func (m *MockAppointmentRepository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}
