package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FechamentoDia is the append-only daily close snapshot.
// CustoTotal = COGS at close-time product cost + expenses of the day.
// Uniqueness per date is enforced by the service guard, not the schema,
// so corrective re-closes stay possible when the guard is turned off.
type FechamentoDia struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Data             string          `gorm:"type:varchar(10);index;not null"`
	FaturamentoTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustoTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LucroTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	QtdPedidos       int             `gorm:"not null"`
	CreatedAt        time.Time
}

func (f *FechamentoDia) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
