package clinic

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
)

type event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

func patientRegisteredEvent(p *domain.Patient, at time.Time) event {
	return event{
		ID:         uuid.NewString(),
		Type:       "patient.registered",
		OccurredAt: at,
		Data: map[string]interface{}{
			"pacienteId": p.ID.Hex(),
			"nome":       p.Name,
		},
	}
}

func appointmentScheduledEvent(a *domain.Appointment, p *domain.Patient, d *domain.Doctor, at time.Time) event {
	return event{
		ID:         uuid.NewString(),
		Type:       "appointment.scheduled",
		OccurredAt: at,
		Data: map[string]interface{}{
			"consultaId":    a.ID.Hex(),
			"pacienteId":    p.ID.Hex(),
			"pacienteNome":  p.Name,
			"medicoId":      d.ID.Hex(),
			"medicoNome":    d.Name,
			"dataHora":      a.ScheduledAt,
			"valorConsulta": a.Fee,
		},
	}
}

// publish is best effort: the insert already succeeded.
func (s *Service) publish(subject string, e event) {
	payload, err := json.Marshal(e)
	if err != nil {
		s.log.Error("Failed to encode event", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := s.mq.Publish(subject, payload); err != nil {
		s.log.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
