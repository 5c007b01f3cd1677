package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
	"github.com/seu-repo/medsys/internal/ports"
)

const menu = `
=== MEDSYS - SISTEMA DE GESTÃO ===
1. Listar Médicos por Especialidade
2. Cadastrar Novo Paciente
3. Buscar Paciente por CPF
4. Agendar Consulta
0. Sair
`

// errEndOfInput is returned by prompt once the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// Console is the interactive text menu over the clinic service.
type Console struct {
	service ports.ClinicService
	scanner *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
}

func NewConsole(service ports.ClinicService, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		service: service,
		scanner: bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run shows the menu until the user picks 0 or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu)
		option, err := c.prompt("Escolha uma opção: ")
		if err != nil {
			return c.endOfInput(err)
		}

		switch strings.TrimSpace(option) {
		case "1":
			err = c.ListDoctors(ctx)
		case "2":
			err = c.RegisterPatient(ctx)
		case "3":
			_, err = c.FindPatient(ctx)
		case "4":
			err = c.ScheduleAppointment(ctx)
		case "0":
			fmt.Fprintln(c.out, "Saindo do sistema...")
			return nil
		default:
			fmt.Fprintln(c.out, "Opção inválida!")
		}

		if err != nil {
			return c.endOfInput(err)
		}
	}
}

func (c *Console) endOfInput(err error) error {
	if errors.Is(err, errEndOfInput) {
		fmt.Fprintln(c.out)
		return nil
	}
	return err
}

// ListDoctors prints the active doctors, optionally of one specialty.
func (c *Console) ListDoctors(ctx context.Context) error {
	specialty, err := c.prompt("Digite a especialidade (ex: Cardiologia, Pediatria) ou ENTER para todos: ")
	if err != nil {
		return err
	}

	doctors, err := c.service.ListDoctors(ctx, strings.TrimSpace(specialty))
	if err != nil {
		c.log.Error("Failed to list doctors", zap.Error(err))
		fmt.Fprintf(c.out, "❌ Erro ao listar médicos: %v\n", err)
		return nil
	}

	fmt.Fprintln(c.out, "\n--- Médicos Encontrados ---")
	for _, d := range doctors {
		fmt.Fprintf(c.out, "Nome: %s | CRM: %s | Especialidade: %s\n", d.Name, d.CRM, d.Specialty)
	}
	return nil
}

func (c *Console) RegisterPatient(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Novo Paciente ---")

	var input domain.PatientInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Nome completo: ", &input.Name},
		{"CPF (apenas números): ", &input.CPF},
		{"Telefone: ", &input.Phone},
		{"Data de Nascimento (AAAA-MM-DD): ", &input.BirthDate},
	}
	for _, f := range fields {
		v, err := c.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := c.service.RegisterPatient(ctx, input); err != nil {
		fmt.Fprintf(c.out, "❌ Erro ao cadastrar: %s\n", describe(err))
		return nil
	}
	fmt.Fprintln(c.out, "✅ Paciente cadastrado com sucesso!")
	return nil
}

// FindPatient prompts for a CPF and prints the match. The patient is
// returned so scheduling can reuse it; nil means not found or failed.
func (c *Console) FindPatient(ctx context.Context) (*domain.Patient, error) {
	cpf, err := c.prompt("Digite o CPF do paciente: ")
	if err != nil {
		return nil, err
	}

	patient, err := c.service.FindPatientByCPF(ctx, cpf)
	if err != nil {
		c.log.Error("Failed to find patient", zap.Error(err))
		fmt.Fprintf(c.out, "❌ Erro ao buscar paciente: %v\n", err)
		return nil, nil
	}
	if patient == nil {
		fmt.Fprintln(c.out, "Paciente não encontrado.")
		return nil, nil
	}

	fmt.Fprintf(c.out, "\nEncontrado: %s | Tel: %s\n", patient.Name, patient.Phone)
	return patient, nil
}

func (c *Console) ScheduleAppointment(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Agendar Consulta ---")

	patient, err := c.FindPatient(ctx)
	if err != nil || patient == nil {
		return err
	}

	crm, err := c.prompt("Digite o CRM do médico: ")
	if err != nil {
		return err
	}
	doctor, err := c.service.FindDoctorByCRM(ctx, crm)
	if err != nil {
		c.log.Error("Failed to find doctor", zap.Error(err))
		fmt.Fprintf(c.out, "❌ Erro ao buscar médico: %v\n", err)
		return nil
	}
	if doctor == nil {
		fmt.Fprintln(c.out, "Médico não encontrado.")
		return nil
	}

	when, err := c.prompt("Data e Hora (AAAA-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	reason, err := c.prompt("Motivo da consulta: ")
	if err != nil {
		return err
	}
	rawFee, err := c.prompt("Valor da consulta: ")
	if err != nil {
		return err
	}

	// All three answers are read before any of them is checked.
	if _, err := domain.ParseAppointmentTime(when); err != nil {
		fmt.Fprintf(c.out, "❌ Erro ao agendar: %s\n", describe(err))
		return nil
	}
	fee, err := domain.ParseFee(rawFee)
	if err != nil {
		fmt.Fprintf(c.out, "❌ Erro ao agendar: %s\n", describe(err))
		return nil
	}

	_, err = c.service.BookAppointment(ctx, patient, doctor, domain.AppointmentInput{
		ScheduledAt: when,
		Reason:      reason,
		Fee:         fee,
	})
	if err != nil {
		fmt.Fprintf(c.out, "❌ Erro ao agendar: %s\n", describe(err))
		return nil
	}
	fmt.Fprintln(c.out, "✅ Consulta agendada com sucesso!")
	return nil
}

// prompt prints label and reads one line. It returns errEndOfInput when the
// stream is exhausted.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEndOfInput
	}
	return c.scanner.Text(), nil
}

// describe words input errors for the operator. Store errors, duplicate keys
// included, are printed as the driver reported them.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCPF):
		return "o CPF deve conter exatamente 11 números"
	case errors.Is(err, domain.ErrInvalidDate):
		return "data inválida"
	case errors.Is(err, domain.ErrInvalidFee):
		return "valor inválido"
	case errors.Is(err, domain.ErrPatientNotFound):
		return "paciente não encontrado"
	case errors.Is(err, domain.ErrDoctorNotFound):
		return "médico não encontrado"
	default:
		return err.Error()
	}
}
