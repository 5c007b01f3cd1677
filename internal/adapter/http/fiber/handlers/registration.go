package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
	"github.com/seu-repo/medsys/internal/ports"
)

const (
	msgInvalidCPF  = "O CPF deve conter exatamente 11 números."
	msgInvalidDate = "Data inválida."
	msgDuplicate   = "Este CPF ou E-mail já existe no sistema."
)

type RegistrationHandler struct {
	service ports.ClinicService
	flashes *Flashes
	log     *zap.Logger
}

func NewRegistrationHandler(service ports.ClinicService, flashes *Flashes, log *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		flashes: flashes,
		log:     log,
	}
}

func (h *RegistrationHandler) Form(c *fiber.Ctx) error {
	return h.flashes.Render(c, "cadastro", fiber.Map{"Title": "Cadastro"})
}

func (h *RegistrationHandler) Submit(c *fiber.Ctx) error {
	input := domain.PatientInput{
		Name:      c.FormValue("nome"),
		CPF:       c.FormValue("cpf"),
		Phone:     c.FormValue("telefone"),
		BirthDate: c.FormValue("nascimento"),
		Email:     c.FormValue("email"),
		Notes:     c.FormValue("observacoes"),
		Address: domain.Address{
			Street:       c.FormValue("logradouro"),
			Number:       c.FormValue("numero"),
			Neighborhood: c.FormValue("bairro"),
			City:         c.FormValue("cidade"),
			State:        c.FormValue("estado"),
			PostalCode:   c.FormValue("cep"),
		},
	}

	patient, err := h.service.RegisterPatient(c.Context(), input)
	if err != nil {
		return h.formWithError(c, err)
	}

	msg := fmt.Sprintf("Paciente %s cadastrado com sucesso!", patient.Name)
	if err := h.flashes.Push(c, domain.FlashSuccess, msg); err != nil {
		h.log.Warn("Failed to store flash", zap.Error(err))
	}
	return c.Redirect("/")
}

// formWithError redisplays an empty form with the notice matching err.
func (h *RegistrationHandler) formWithError(c *fiber.Ctx, err error) error {
	var notice domain.Flash
	switch {
	case errors.Is(err, domain.ErrInvalidCPF):
		notice = domain.Flash{Category: domain.FlashDanger, Message: msgInvalidCPF}
	case errors.Is(err, domain.ErrInvalidDate):
		notice = domain.Flash{Category: domain.FlashDanger, Message: msgInvalidDate}
	case errors.Is(err, domain.ErrDuplicateKey):
		notice = domain.Flash{Category: domain.FlashWarning, Message: msgDuplicate}
	default:
		h.log.Error("Failed to register patient", zap.Error(err))
		notice = domain.Flash{Category: domain.FlashDanger, Message: "Erro ao salvar: " + err.Error()}
	}
	return h.flashes.Render(c, "cadastro", fiber.Map{"Title": "Cadastro"}, notice)
}
