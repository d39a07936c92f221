package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProdutoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory fakes.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context) ([]model.Produto, error)
	ListSemDisponivel(ctx context.Context) ([]model.Produto, error)

	// UpdateCampos applies a field-level merge. A missing id updates zero
	// rows and returns no error (silent no-op by contract).
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error

	// Used inside transactions — callers must pass the tx instance
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error)
	AtualizarCustoTx(tx *gorm.DB, id uuid.UUID, custo decimal.Decimal) error

	// AjustarEstoqueTx applies deltas to estoque_total / estoque_disponivel,
	// clamping each at zero. Row-locked on drivers that support it.
	AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, deltaTotal, deltaDisponivel int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

// lockForUpdate adds SELECT ... FOR UPDATE on postgres. SQLite serializes
// writers per transaction and rejects the clause, so it is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := tx.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) ListSemDisponivel(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Where("estoque_disponivel = 0").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *produtoRepo) AtualizarCustoTx(tx *gorm.DB, id uuid.UUID, custo decimal.Decimal) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).Update("preco_custo", custo).Error
}

func (r *produtoRepo) AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, deltaTotal, deltaDisponivel int) error {
	var p model.Produto
	if err := lockForUpdate(tx).First(&p, "id = ?", id).Error; err != nil {
		return err
	}
	total := p.EstoqueTotal + deltaTotal
	if total < 0 {
		total = 0
	}
	disponivel := p.EstoqueDisponivel + deltaDisponivel
	if disponivel < 0 {
		disponivel = 0
	}
	return tx.Model(&model.Produto{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estoque_total":      total,
		"estoque_disponivel": disponivel,
	}).Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
