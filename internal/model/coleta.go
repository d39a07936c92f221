package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemColeta is a supplier restock request.
// Status: "pendente" | "coletado" — the toggle operation moves it back and
// forth, applying/undoing stock, cost, expense and divergence side effects.
// QtdEntregue is set only while coletado. PrecoCusto persists across an undo
// so a re-toggle can default to the last entered cost.
type ItemColeta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProdutoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	QtdSolicitada int       `gorm:"not null"`
	QtdEntregue   *int
	PrecoCusto    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status        string           `gorm:"type:varchar(10);not null;default:'pendente'"`
	Data          string           `gorm:"type:varchar(10);index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (i *ItemColeta) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
