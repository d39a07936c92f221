package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Divergencia records entregue != solicitado at collection time.
// ProdutoNome is a deliberate denormalized snapshot: the audit trail must
// survive product renames. ItemColetaID links the row to the collection item
// so an undo can remove exactly this entry.
type Divergencia struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemColetaID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ProdutoID     uuid.UUID `gorm:"type:uuid;not null"`
	ProdutoNome   string    `gorm:"not null"`
	QtdSolicitada int       `gorm:"not null"`
	QtdEntregue   int       `gorm:"not null"`
	// Diferenca = entregue - solicitado (negative means short delivery)
	Diferenca  int             `gorm:"not null"`
	PrecoCusto decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Data       string          `gorm:"type:varchar(10);index;not null"`
	CreatedAt  time.Time
}

func (d *Divergencia) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
