package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	PatientsRegisteredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medsys_patients_registered_total",
		Help: "Total de tentativas de cadastro de pacientes",
	}, []string{"result"})

	AppointmentsScheduledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medsys_appointments_scheduled_total",
		Help: "Total de tentativas de agendamento de consultas",
	}, []string{"result"})

	// Métricas de infraestrutura
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medsys_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "route", "status"})

	DatabaseLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "medsys_database_latency_seconds",
		Help:    "Latência de operações no MongoDB",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// ObserveDatabase records the latency of a store operation started at start.
func ObserveDatabase(operation string, start time.Time) {
	DatabaseLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
