package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Produto is the catalog entry every other entity references by id.
// EstoqueTotal counts units ever received minus losses/undos (nominal
// capacity); EstoqueDisponivel counts what can still be sold. Decrements
// clamp at zero instead of failing.
type Produto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome        string    `gorm:"index;not null"`
	Emoji       string    `gorm:"not null;default:''"`
	PrecoVenda  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// PrecoCusto is the latest known acquisition cost; collection receipts
	// overwrite it. Historical snapshots live on ItemColeta/Perda.
	PrecoCusto        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	EstoqueTotal      int             `gorm:"not null;default:0"`
	EstoqueDisponivel int             `gorm:"not null;default:0"`
	NCM               *string         `gorm:"type:varchar(10)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *Produto) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
