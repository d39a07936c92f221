package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DespesaRepository interface {
	Create(ctx context.Context, d *model.Despesa) error
	CreateTx(tx *gorm.DB, d *model.Despesa) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List filters by inclusive date range; empty bounds are open-ended.
	List(ctx context.Context, de, ate string) ([]model.Despesa, error)
	ListPorData(ctx context.Context, data string) ([]model.Despesa, error)

	// DeleteCompraAutomaticaTx removes the auto-generated purchase expense
	// created by a collection toggle, matched by description prefix + date.
	DeleteCompraAutomaticaTx(tx *gorm.DB, prefixo, data string) error

	DB() *gorm.DB
}

type despesaRepo struct{ db *gorm.DB }

func NewDespesaRepository(db *gorm.DB) DespesaRepository { return &despesaRepo{db: db} }

func (r *despesaRepo) Create(ctx context.Context, d *model.Despesa) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *despesaRepo) CreateTx(tx *gorm.DB, d *model.Despesa) error {
	return tx.Create(d).Error
}

func (r *despesaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Despesa{}, "id = ?", id).Error
}

func (r *despesaRepo) List(ctx context.Context, de, ate string) ([]model.Despesa, error) {
	q := r.db.WithContext(ctx).Model(&model.Despesa{})
	if de != "" {
		q = q.Where("data >= ?", de)
	}
	if ate != "" {
		q = q.Where("data <= ?", ate)
	}
	var despesas []model.Despesa
	err := q.Order("created_at DESC").Find(&despesas).Error
	return despesas, err
}

func (r *despesaRepo) ListPorData(ctx context.Context, data string) ([]model.Despesa, error) {
	var despesas []model.Despesa
	err := r.db.WithContext(ctx).Where("data = ?", data).Find(&despesas).Error
	return despesas, err
}

func (r *despesaRepo) DeleteCompraAutomaticaTx(tx *gorm.DB, prefixo, data string) error {
	return tx.Where("descricao LIKE ? AND data = ?", prefixo+"%", data).
		Delete(&model.Despesa{}).Error
}

func (r *despesaRepo) DB() *gorm.DB { return r.db }
