package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"gorm.io/gorm"
)

type FechamentoRepository interface {
	CreateTx(tx *gorm.DB, f *model.FechamentoDia) error
	ExistePorData(ctx context.Context, data string) (bool, error)
	List(ctx context.Context) ([]model.FechamentoDia, error)
	ListPorMes(ctx context.Context, mes string) ([]model.FechamentoDia, error)
	DB() *gorm.DB
}

type fechamentoRepo struct{ db *gorm.DB }

func NewFechamentoRepository(db *gorm.DB) FechamentoRepository { return &fechamentoRepo{db: db} }

func (r *fechamentoRepo) CreateTx(tx *gorm.DB, f *model.FechamentoDia) error {
	return tx.Create(f).Error
}

func (r *fechamentoRepo) ExistePorData(ctx context.Context, data string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.FechamentoDia{}).Where("data = ?", data).Count(&total).Error
	return total > 0, err
}

func (r *fechamentoRepo) List(ctx context.Context) ([]model.FechamentoDia, error) {
	var dias []model.FechamentoDia
	err := r.db.WithContext(ctx).Order("data DESC").Find(&dias).Error
	return dias, err
}

// ListPorMes expects mes in "2006-01" form.
func (r *fechamentoRepo) ListPorMes(ctx context.Context, mes string) ([]model.FechamentoDia, error) {
	var dias []model.FechamentoDia
	err := r.db.WithContext(ctx).Where("data LIKE ?", mes+"%").Order("data ASC").Find(&dias).Error
	return dias, err
}

func (r *fechamentoRepo) DB() *gorm.DB { return r.db }
