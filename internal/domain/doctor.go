package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OfficeHours is one weekly attendance window of a doctor.
type OfficeHours struct {
	Weekday int    `json:"diaSemana" bson:"diaSemana"` // 0 = Sunday
	Start   string `json:"horaInicio" bson:"horaInicio"`
	End     string `json:"horaFim" bson:"horaFim"`
}

// Doctor records are provisioned outside of MedSys and are read-only here.
type Doctor struct {
	ID           bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name         string         `json:"nome" bson:"nome"`
	CRM          string         `json:"crm" bson:"crm"`
	Specialty    string         `json:"especialidade" bson:"especialidade"`
	UserID       *bson.ObjectID `json:"usuarioId,omitempty" bson:"usuarioId,omitempty"`
	Phone        string         `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Email        string         `json:"email,omitempty" bson:"email,omitempty"`
	OfficeHours  []OfficeHours  `json:"horarioAtendimento,omitempty" bson:"horarioAtendimento,omitempty"`
	Active       bool           `json:"ativo" bson:"ativo"`
	RegisteredAt *time.Time     `json:"dataCadastro,omitempty" bson:"dataCadastro,omitempty"`
}
