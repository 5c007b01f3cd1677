package domain

import "errors"

var (
	ErrInvalidCPF      = errors.New("cpf must contain exactly 11 digits")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidFee      = errors.New("invalid fee")
	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrDuplicateKey    = errors.New("duplicate key")
)
