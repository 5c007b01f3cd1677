package health

import (
	"github.com/gofiber/fiber/v2"
)

// FiberHandler exposes the probes on a fiber router.
type FiberHandler struct {
	service *Service
}

func NewFiberHandler(service *Service) *FiberHandler {
	return &FiberHandler{service: service}
}

func (h *FiberHandler) RegisterRoutes(router fiber.Router) {
	probes := router.Group("/health")
	probes.Get("/live", h.Live)
	probes.Get("/ready", h.Ready)
}

// Live answers as long as the process serves HTTP.
func (h *FiberHandler) Live(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// Ready answers 503 while any dependency is down.
func (h *FiberHandler) Ready(c *fiber.Ctx) error {
	report := h.service.Ready(c.Context())
	if !report.Ready() {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(report)
}
