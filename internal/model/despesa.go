package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Despesa is a monetary outflow. Manual entries and auto-generated purchase
// entries ("Compra: {produto} (N cx)") share the same ledger; the collection
// undo removes the auto entry by description prefix + date.
type Despesa struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Descricao string          `gorm:"not null"`
	Valor     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Data      string          `gorm:"type:varchar(10);index;not null"`
	CreatedAt time.Time
}

func (d *Despesa) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
