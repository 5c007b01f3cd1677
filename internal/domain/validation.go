package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	CPFLength = 11

	BirthDateLayout      = "2006-01-02"
	AppointmentLayout    = "2006-01-02 15:04"
	LegacyDateTimeLayout = "2006-01-02 15:04:05"
)

// NormalizeCPF strips every non-digit character from raw.
func NormalizeCPF(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// ValidateCPF returns the normalized CPF, or ErrInvalidCPF when it does not
// have exactly CPFLength digits. Check digits are not verified.
func ValidateCPF(raw string) (string, error) {
	cpf := NormalizeCPF(raw)
	if len(cpf) != CPFLength {
		return "", fmt.Errorf("%w: got %d", ErrInvalidCPF, len(cpf))
	}
	return cpf, nil
}

func ParseBirthDate(s string) (time.Time, error) {
	return parseLocal(BirthDateLayout, s)
}

func ParseAppointmentTime(s string) (time.Time, error) {
	return parseLocal(AppointmentLayout, s)
}

// ParseLegacyDateTime reads dataHora values that older imports stored as text.
func ParseLegacyDateTime(s string) (time.Time, bool) {
	t, err := parseLocal(LegacyDateTimeLayout, s)
	return t, err == nil
}

// ParseFee parses a consultation fee, accepting either "." or "," as the
// decimal separator.
func ParseFee(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	fee, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(fee) || math.IsInf(fee, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFee, s)
	}
	return fee, nil
}

// IsBlank reports whether s has only whitespace.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func parseLocal(layout, s string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDate, s, layout)
	}
	return t, nil
}
