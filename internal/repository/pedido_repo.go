package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository defines data access for the order ledger.
type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// List returns active orders newest first, items included.
	List(ctx context.Context) ([]model.Pedido, error)
	// ListEntreguesDoDia selects delivered orders dated `data` or with an
	// empty date (legacy rows created before dates were mandatory).
	ListEntreguesDoDia(ctx context.Context, data string) ([]model.Pedido, error)
	ListFiado(ctx context.Context) ([]model.Pedido, error)
	ListFiadoPorCliente(ctx context.Context, clienteNome string) ([]model.Pedido, error)

	Update(ctx context.Context, p *model.Pedido) error
	UpdateCamposTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error
	// ReplaceItensTx swaps the full item set of an order.
	ReplaceItensTx(tx *gorm.DB, pedidoID uuid.UUID, itens []model.PedidoItem) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").Order("created_at DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListEntreguesDoDia(ctx context.Context, data string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").
		Where("(data = ? OR data = '') AND status = 'entregue'", data).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListFiado(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").
		Where("pagamento = 'fiado'").
		Order("created_at DESC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListFiadoPorCliente(ctx context.Context, clienteNome string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Itens").
		Where("pagamento = 'fiado' AND cliente_nome = ?", clienteNome).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *pedidoRepo) UpdateCamposTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", id).Updates(campos).Error
}

func (r *pedidoRepo) ReplaceItensTx(tx *gorm.DB, pedidoID uuid.UUID, itens []model.PedidoItem) error {
	if err := tx.Delete(&model.PedidoItem{}, "pedido_id = ?", pedidoID).Error; err != nil {
		return err
	}
	for i := range itens {
		itens[i].ID = uuid.Nil
		itens[i].PedidoID = pedidoID
	}
	if len(itens) == 0 {
		return nil
	}
	return tx.Create(&itens).Error
}

func (r *pedidoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.PedidoItem{}, "pedido_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Pedido{}, "id = ?", id).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
