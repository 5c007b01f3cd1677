package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
	"github.com/seu-repo/medsys/internal/mocks"
	"github.com/seu-repo/medsys/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "medsys-test"},
		Session: config.SessionConfig{CookieName: "medsys_session", Expiration: time.Hour},
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			FailureThreshold: 0.6,
		},
		Prometheus: config.PrometheusConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestApp(svc *mocks.MockClinicService) *fiber.App {
	return New(Deps{Config: testConfig(), Service: svc, Log: zap.NewNop()})
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func registrationForm(cpf, birth string) url.Values {
	return url.Values{
		"nome":        {"Ana Silva"},
		"cpf":         {cpf},
		"telefone":    {"(11) 99876-5432"},
		"nascimento":  {birth},
		"logradouro":  {"Rua das Flores"},
		"numero":      {"123"},
		"bairro":      {"Centro"},
		"cidade":      {"São Paulo"},
		"estado":      {"SP"},
		"cep":         {"01234-567"},
		"observacoes": {""},
		"email":       {""},
	}
}

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/cadastro", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDashboard(t *testing.T) {
	svc := &mocks.MockClinicService{
		DashboardFunc: func(ctx context.Context) (*domain.DashboardStats, error) {
			return &domain.DashboardStats{
				ActivePatients:        2,
				ActiveDoctors:         3,
				ScheduledAppointments: 1,
				DoctorsBySpecialty:    []domain.SpecialtyCount{{Specialty: "Cardiologia", Total: 2}},
			}, nil
		},
	}

	resp, body := do(t, newTestApp(svc), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="total-pacientes">2<`)
	assert.Contains(t, body, `id="total-medicos">3<`)
	assert.Contains(t, body, `id="total-consultas">1<`)
	assert.Contains(t, body, `["Cardiologia"]`)
	assert.Contains(t, body, `[2]`)
}

func TestDashboard_StoreError(t *testing.T) {
	svc := &mocks.MockClinicService{
		DashboardFunc: func(ctx context.Context) (*domain.DashboardStats, error) {
			return nil, errors.New("connection refused")
		},
	}

	resp, body := do(t, newTestApp(svc), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Erro 500")
	assert.NotContains(t, body, "connection refused")
}

func TestListPages(t *testing.T) {
	email := "carlos@email.com"
	svc := &mocks.MockClinicService{
		ListAllDoctorsFunc: func(ctx context.Context) ([]domain.Doctor, error) {
			return []domain.Doctor{{Name: "Dr. João Silva", CRM: "12345-SP", Specialty: "Cardiologia", Active: true}}, nil
		},
		ListPatientsFunc: func(ctx context.Context) ([]domain.Patient, error) {
			return []domain.Patient{{
				Name: "Carlos Oliveira", CPF: "12345678901", Email: &email,
				BirthDate: time.Date(1980, time.May, 15, 0, 0, 0, 0, time.Local),
				Address:   &domain.Address{City: "São Paulo", State: "SP"},
			}}, nil
		},
		ListAppointmentsFunc: func(ctx context.Context) ([]domain.Appointment, error) {
			return []domain.Appointment{
				{ID: bson.NewObjectID(), ScheduledAt: time.Date(2025, time.December, 10, 10, 0, 0, 0, time.Local),
					Reason: "Consulta de rotina", Status: domain.AppointmentStatusScheduled, Fee: 250},
				{ID: bson.NewObjectID(), ScheduledAtText: "semana que vem", Status: domain.AppointmentStatusConfirmed},
			}, nil
		},
	}
	app := newTestApp(svc)

	_, body := do(t, app, httptest.NewRequest(http.MethodGet, "/medicos", nil))
	assert.Contains(t, body, "Dr. João Silva")
	assert.Contains(t, body, "12345-SP")

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/pacientes", nil))
	assert.Contains(t, body, "Carlos Oliveira")
	assert.Contains(t, body, "15/05/1980")
	assert.Contains(t, body, "carlos@email.com")

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/consultas", nil))
	assert.Contains(t, body, "10/12/2025 10:00")
	assert.Contains(t, body, "R$ 250,00")
	assert.Contains(t, body, "semana que vem")
	assert.Contains(t, body, "agendada")
}

func TestRegistrationForm(t *testing.T) {
	resp, body := do(t, newTestApp(&mocks.MockClinicService{}), httptest.NewRequest(http.MethodGet, "/cadastro", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="cpf"`)
	assert.Contains(t, body, `name="nascimento"`)
}

func TestRegistration_SuccessRedirectsWithFlash(t *testing.T) {
	var got domain.PatientInput
	svc := &mocks.MockClinicService{
		RegisterPatientFunc: func(ctx context.Context, input domain.PatientInput) (*domain.Patient, error) {
			got = input
			return &domain.Patient{Name: input.Name, Active: true}, nil
		},
	}
	app := newTestApp(svc)

	resp, _ := do(t, app, postForm(registrationForm("123.456.789-01", "1990-05-01")))

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, "123.456.789-01", got.CPF)
	assert.Equal(t, "Rua das Flores", got.Address.Street)
	assert.Equal(t, "01234-567", got.Address.PostalCode)

	// Follow the redirect with the session cookie: the notice shows once.
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	_, body := do(t, app, next)
	assert.Contains(t, body, "Paciente Ana Silva cadastrado com sucesso!")
	assert.Contains(t, body, "alert-success")

	again := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		again.AddCookie(c)
	}
	_, body = do(t, app, again)
	assert.NotContains(t, body, "cadastrado com sucesso")
}

func TestRegistration_Failures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category string
		message  string
	}{
		{"invalid cpf", fmt.Errorf("%w: got 10", domain.ErrInvalidCPF), "danger", "O CPF deve conter exatamente 11 números."},
		{"invalid date", domain.ErrInvalidDate, "danger", "Data inválida."},
		{"duplicate", fmt.Errorf("insert pacientes: %w", domain.ErrDuplicateKey), "warning", "Este CPF ou E-mail já existe no sistema."},
		{"store error", errors.New("no reachable servers"), "danger", "Erro ao salvar: no reachable servers"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockClinicService{
				RegisterPatientFunc: func(ctx context.Context, input domain.PatientInput) (*domain.Patient, error) {
					return nil, tc.err
				},
			}

			resp, body := do(t, newTestApp(svc), postForm(registrationForm("123", "1990-05-01")))

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, body, "alert-"+tc.category)
			assert.Contains(t, body, tc.message)
			assert.Contains(t, body, `<form method="post" action="/cadastro"`)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(&mocks.MockClinicService{})
	do(t, app, httptest.NewRequest(http.MethodGet, "/cadastro", nil))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "medsys_http_requests_total")
}

func TestCircuitBreakerOpensOnStoreFailures(t *testing.T) {
	svc := &mocks.MockClinicService{
		ListPatientsFunc: func(ctx context.Context) ([]domain.Patient, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	app := newTestApp(svc)

	for i := 0; i < 3; i++ {
		resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/pacientes", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/pacientes", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCircuitBreakerIgnoresNotFound(t *testing.T) {
	app := newTestApp(&mocks.MockClinicService{})

	for i := 0; i < 5; i++ {
		resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/cadastro", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="cpf"`)
}
