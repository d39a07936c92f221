package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ColetaRepository covers collection items and their divergence log.
// Divergences belong to the collection aggregate: they are only ever created
// by a toggle and removed by the matching undo.
type ColetaRepository interface {
	CreateTx(tx *gorm.DB, item *model.ItemColeta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ItemColeta, error)
	// List returns pending items first, collected after, newest first inside
	// each group.
	List(ctx context.Context) ([]model.ItemColeta, error)
	UpdateTx(tx *gorm.DB, item *model.ItemColeta) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPendenteDoDiaTx locates the pending item for produto+data inside a
	// transaction, row-locked, so the merge increment cannot race a
	// concurrent insert.
	FindPendenteDoDiaTx(tx *gorm.DB, produtoID uuid.UUID, data string) (*model.ItemColeta, error)
	IncrementarSolicitadaTx(tx *gorm.DB, id uuid.UUID, qtd int) error

	// Divergence log
	CreateDivergenciaTx(tx *gorm.DB, d *model.Divergencia) error
	DeleteDivergenciaPorItemTx(tx *gorm.DB, itemColetaID uuid.UUID) error
	ListDivergencias(ctx context.Context) ([]model.Divergencia, error)
	CountDivergenciasPorData(ctx context.Context, data string) (int64, error)

	DB() *gorm.DB
}

type coletaRepo struct{ db *gorm.DB }

func NewColetaRepository(db *gorm.DB) ColetaRepository { return &coletaRepo{db: db} }

func (r *coletaRepo) CreateTx(tx *gorm.DB, item *model.ItemColeta) error {
	return tx.Create(item).Error
}

func (r *coletaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ItemColeta, error) {
	var item model.ItemColeta
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *coletaRepo) List(ctx context.Context) ([]model.ItemColeta, error) {
	var itens []model.ItemColeta
	// booleans sort false < true on both drivers, so pendente comes first
	err := r.db.WithContext(ctx).
		Order("status = 'coletado'").
		Order("created_at DESC").
		Find(&itens).Error
	return itens, err
}

func (r *coletaRepo) UpdateTx(tx *gorm.DB, item *model.ItemColeta) error {
	return tx.Save(item).Error
}

func (r *coletaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ItemColeta{}, "id = ?", id).Error
}

func (r *coletaRepo) FindPendenteDoDiaTx(tx *gorm.DB, produtoID uuid.UUID, data string) (*model.ItemColeta, error) {
	var item model.ItemColeta
	err := lockForUpdate(tx).
		Where("produto_id = ? AND data = ? AND status = 'pendente'", produtoID, data).
		First(&item).Error
	return &item, err
}

func (r *coletaRepo) IncrementarSolicitadaTx(tx *gorm.DB, id uuid.UUID, qtd int) error {
	return tx.Model(&model.ItemColeta{}).Where("id = ?", id).
		Update("qtd_solicitada", gorm.Expr("qtd_solicitada + ?", qtd)).Error
}

func (r *coletaRepo) CreateDivergenciaTx(tx *gorm.DB, d *model.Divergencia) error {
	return tx.Create(d).Error
}

func (r *coletaRepo) DeleteDivergenciaPorItemTx(tx *gorm.DB, itemColetaID uuid.UUID) error {
	return tx.Delete(&model.Divergencia{}, "item_coleta_id = ?", itemColetaID).Error
}

func (r *coletaRepo) ListDivergencias(ctx context.Context) ([]model.Divergencia, error) {
	var divs []model.Divergencia
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&divs).Error
	return divs, err
}

func (r *coletaRepo) CountDivergenciasPorData(ctx context.Context, data string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Divergencia{}).Where("data = ?", data).Count(&total).Error
	return total, err
}

func (r *coletaRepo) DB() *gorm.DB { return r.db }
