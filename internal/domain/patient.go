package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Address is the optional postal address embedded in a patient document.
type Address struct {
	Street       string `json:"logradouro" bson:"logradouro"`
	Number       string `json:"numero" bson:"numero"`
	Complement   string `json:"complemento,omitempty" bson:"complemento,omitempty"`
	Neighborhood string `json:"bairro" bson:"bairro"`
	City         string `json:"cidade" bson:"cidade"`
	State        string `json:"estado" bson:"estado"`
	PostalCode   string `json:"cep" bson:"cep"`
}

// IsEmpty reports whether every address field is blank.
func (a Address) IsEmpty() bool {
	for _, v := range []string{a.Street, a.Number, a.Complement, a.Neighborhood, a.City, a.State, a.PostalCode} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type Patient struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"nome" bson:"nome"`
	CPF          string        `json:"cpf" bson:"cpf"`
	Phone        string        `json:"telefone" bson:"telefone"`
	BirthDate    time.Time     `json:"dataNascimento" bson:"dataNascimento"`
	Email        *string       `json:"email,omitempty" bson:"email,omitempty"`
	Address      *Address      `json:"endereco,omitempty" bson:"endereco,omitempty"`
	Notes        string        `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	Active       bool          `json:"ativo" bson:"ativo"`
	RegisteredAt time.Time     `json:"dataCadastro" bson:"dataCadastro"`
}

// PatientInput carries the raw, unvalidated values of a registration request,
// whether it came from the console or from the web form.
type PatientInput struct {
	Name      string
	CPF       string
	Phone     string
	BirthDate string // YYYY-MM-DD
	Email     string
	Address   Address
	Notes     string
}
