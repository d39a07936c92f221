package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Empresa holds the single business profile shown on receipts and reports.
type Empresa struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome     string    `gorm:"not null"`
	Ramo     string
	CNPJ     *string `gorm:"type:varchar(18)"`
	Endereco *string
	Telefone *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Empresa) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
