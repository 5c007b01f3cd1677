package mocks

import (
	"context"

	"github.com/seu-repo/medsys/internal/domain"
)

// MockClinicService is a mock implementation of ClinicService
type MockClinicService struct {
	ListDoctorsFunc         func(ctx context.Context, specialty string) ([]domain.Doctor, error)
	ListAllDoctorsFunc      func(ctx context.Context) ([]domain.Doctor, error)
	ListPatientsFunc        func(ctx context.Context) ([]domain.Patient, error)
	ListAppointmentsFunc    func(ctx context.Context) ([]domain.Appointment, error)
	RegisterPatientFunc     func(ctx context.Context, input domain.PatientInput) (*domain.Patient, error)
	FindPatientByCPFFunc    func(ctx context.Context, cpf string) (*domain.Patient, error)
	FindDoctorByCRMFunc     func(ctx context.Context, crm string) (*domain.Doctor, error)
	ScheduleAppointmentFunc func(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error)
	BookAppointmentFunc     func(ctx context.Context, patient *domain.Patient, doctor *domain.Doctor, input domain.AppointmentInput) (*domain.Appointment, error)
	DashboardFunc           func(ctx context.Context) (*domain.DashboardStats, error)
}

func (m *MockClinicService) ListDoctors(ctx context.Context, specialty string) ([]domain.Doctor, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx, specialty)
	}
	return []domain.Doctor{}, nil
}

func (m *MockClinicService) ListAllDoctors(ctx context.Context) ([]domain.Doctor, error) {
	if m.ListAllDoctorsFunc != nil {
		return m.ListAllDoctorsFunc(ctx)
	}
	return []domain.Doctor{}, nil
}

func (m *MockClinicService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	if m.ListPatientsFunc != nil {
		return m.ListPatientsFunc(ctx)
	}
	return []domain.Patient{}, nil
}

func (m *MockClinicService) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	if m.ListAppointmentsFunc != nil {
		return m.ListAppointmentsFunc(ctx)
	}
	return []domain.Appointment{}, nil
}

func (m *MockClinicService) RegisterPatient(ctx context.Context, input domain.PatientInput) (*domain.Patient, error) {
	if m.RegisterPatientFunc != nil {
		return m.RegisterPatientFunc(ctx, input)
	}
	return &domain.Patient{Name: input.Name, CPF: input.CPF, Active: true}, nil
}

func (m *MockClinicService) FindPatientByCPF(ctx context.Context, cpf string) (*domain.Patient, error) {
	if m.FindPatientByCPFFunc != nil {
		return m.FindPatientByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockClinicService) FindDoctorByCRM(ctx context.Context, crm string) (*domain.Doctor, error) {
	if m.FindDoctorByCRMFunc != nil {
		return m.FindDoctorByCRMFunc(ctx, crm)
	}
	return nil, nil
}

func (m *MockClinicService) ScheduleAppointment(ctx context.Context, input domain.AppointmentInput) (*domain.Appointment, error) {
	if m.ScheduleAppointmentFunc != nil {
		return m.ScheduleAppointmentFunc(ctx, input)
	}
	return &domain.Appointment{Status: domain.AppointmentStatusScheduled}, nil
}

func (m *MockClinicService) BookAppointment(ctx context.Context, patient *domain.Patient, doctor *domain.Doctor, input domain.AppointmentInput) (*domain.Appointment, error) {
	if m.BookAppointmentFunc != nil {
		return m.BookAppointmentFunc(ctx, patient, doctor, input)
	}
	return &domain.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, Status: domain.AppointmentStatusScheduled}, nil
}

func (m *MockClinicService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx)
	}
	return &domain.DashboardStats{}, nil
}
