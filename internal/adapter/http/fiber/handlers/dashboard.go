package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/ports"
)

type DashboardHandler struct {
	service ports.ClinicService
	flashes *Flashes
	log     *zap.Logger
}

func NewDashboardHandler(service ports.ClinicService, flashes *Flashes, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		flashes: flashes,
		log:     log,
	}
}

func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}

	labels, values := stats.ChartSeries()
	return h.flashes.Render(c, "index", fiber.Map{
		"Title":       "Painel",
		"Stats":       stats,
		"ChartLabels": labels,
		"ChartValues": values,
	})
}
