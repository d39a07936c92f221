package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pedido is a customer order.
// Status: "pendente" | "em_separacao" | "entregue"
// Pagamento: "fiado" | "pago"
// Fiado orders survive the daily close until settled; only entregue+pago
// orders are pruned.
type Pedido struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClienteNome string    `gorm:"index;not null"`
	ClienteFone *string
	Itens       []PedidoItem    `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	Pagamento   string          `gorm:"type:varchar(10);not null;default:'fiado'"`
	Hora        string          `gorm:"type:varchar(5)"`
	Data        string          `gorm:"type:varchar(10);index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Pedido) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PedidoItem locks the sale price at order creation. PrecoNoPedido is never
// re-read from the product afterwards.
type PedidoItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PedidoID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProdutoID uuid.UUID `gorm:"type:uuid;not null"`
	Qtd      int       `gorm:"not null"`
	// QtdOriginal snapshots the quantity before separation-time edits
	QtdOriginal   *int
	PrecoNoPedido decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Coletado      bool            `gorm:"not null;default:false"`
}

func (i *PedidoItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
