package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Perda is a destructive stock write-off.
// Motivo: "estragado" | "sobra" | "devolucao" | "outro"
// PrecoCusto is the unit cost snapshot at write-off time, not a live
// reference to the product's current cost.
type Perda struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProdutoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Qtd        int             `gorm:"not null"`
	Motivo     string          `gorm:"type:varchar(20);not null"`
	PrecoCusto decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Data       string          `gorm:"type:varchar(10);index;not null"`
	CreatedAt  time.Time
}

func (p *Perda) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
