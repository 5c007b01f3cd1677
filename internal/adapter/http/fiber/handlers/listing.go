package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/ports"
)

// ListingHandler renders the read-only tables.
type ListingHandler struct {
	service ports.ClinicService
	flashes *Flashes
	log     *zap.Logger
}

func NewListingHandler(service ports.ClinicService, flashes *Flashes, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		flashes: flashes,
		log:     log,
	}
}

func (h *ListingHandler) Doctors(c *fiber.Ctx) error {
	doctors, err := h.service.ListAllDoctors(c.Context())
	if err != nil {
		return err
	}
	return h.flashes.Render(c, "medicos", fiber.Map{"Title": "Médicos", "Doctors": doctors})
}

func (h *ListingHandler) Patients(c *fiber.Ctx) error {
	patients, err := h.service.ListPatients(c.Context())
	if err != nil {
		return err
	}
	return h.flashes.Render(c, "pacientes", fiber.Map{"Title": "Pacientes", "Patients": patients})
}

func (h *ListingHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := h.service.ListAppointments(c.Context())
	if err != nil {
		return err
	}
	return h.flashes.Render(c, "consultas", fiber.Map{"Title": "Consultas", "Appointments": appointments})
}
