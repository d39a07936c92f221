package repository

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/model"

	"gorm.io/gorm"
)

// ResetRepository wipes all operational data for the tenant. Users and the
// company profile survive so the operator can keep logging in after a reset.
type ResetRepository interface {
	LimparTudo(ctx context.Context) error
}

type resetRepo struct{ db *gorm.DB }

func NewResetRepository(db *gorm.DB) ResetRepository { return &resetRepo{db: db} }

func (r *resetRepo) LimparTudo(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []interface{}{
			&model.PedidoItem{},
			&model.Pedido{},
			&model.Divergencia{},
			&model.ItemColeta{},
			&model.Perda{},
			&model.Despesa{},
			&model.FechamentoDia{},
			&model.Produto{},
		} {
			if err := wipe.Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
