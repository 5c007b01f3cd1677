package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/pkg/config"
)

// CircuitBreaker fails requests fast with 503 while the store keeps failing.
// Only server errors count as failures. Client errors such as 404 pass through
// without touching the counts.
func CircuitBreaker(cfg config.CircuitBreakerConfig, log *zap.Logger) fiber.Handler {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "medsys-web",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return func(c *fiber.Ctx) error {
		var clientErr error
		_, err := cb.Execute(func() (interface{}, error) {
			err := c.Next()
			var e *fiber.Error
			if errors.As(err, &e) && e.Code < fiber.StatusInternalServerError {
				clientErr = err
				return nil, nil
			}
			return nil, err
		})

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Serviço temporariamente indisponível")
		}
		if err != nil {
			return err
		}
		return clientErr
	}
}
