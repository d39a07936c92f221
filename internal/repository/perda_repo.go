package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"gorm.io/gorm"
)

type PerdaRepository interface {
	CreateTx(tx *gorm.DB, p *model.Perda) error
	List(ctx context.Context, de, ate string) ([]model.Perda, error)
	DB() *gorm.DB
}

type perdaRepo struct{ db *gorm.DB }

func NewPerdaRepository(db *gorm.DB) PerdaRepository { return &perdaRepo{db: db} }

func (r *perdaRepo) CreateTx(tx *gorm.DB, p *model.Perda) error {
	return tx.Create(p).Error
}

func (r *perdaRepo) List(ctx context.Context, de, ate string) ([]model.Perda, error) {
	q := r.db.WithContext(ctx).Model(&model.Perda{})
	if de != "" {
		q = q.Where("data >= ?", de)
	}
	if ate != "" {
		q = q.Where("data <= ?", ate)
	}
	var perdas []model.Perda
	err := q.Order("created_at DESC").Find(&perdas).Error
	return perdas, err
}

func (r *perdaRepo) DB() *gorm.DB { return r.db }
