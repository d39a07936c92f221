package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterzhermit/URSTORE/internal/config"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PerdaService interface {
	Registrar(ctx context.Context, req dto.RegistrarPerdaRequest) (*dto.PerdaResponse, error)
	Listar(ctx context.Context, de, ate string) ([]dto.PerdaResponse, error)
	// RegistrarDevolucaoTx records a return write-off inside an order
	// transaction. Availability already left at order creation, so only the
	// nominal total drops here.
	RegistrarDevolucaoTx(tx *gorm.DB, produto *model.Produto, qtd int) error
}

type perdaService struct {
	repo        repository.PerdaRepository
	produtoRepo repository.ProdutoRepository
	despesaRepo repository.DespesaRepository
	cfg         *config.Config
}

func NewPerdaService(
	repo repository.PerdaRepository,
	produtoRepo repository.ProdutoRepository,
	despesaRepo repository.DespesaRepository,
	cfg *config.Config,
) PerdaService {
	return &perdaService{repo: repo, produtoRepo: produtoRepo, despesaRepo: despesaRepo, cfg: cfg}
}

func (s *perdaService) Registrar(ctx context.Context, req dto.RegistrarPerdaRequest) (*dto.PerdaResponse, error) {
	pid, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, fmt.Errorf("produto_id inválido: %w", err)
	}
	produto, err := s.produtoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	custo := produto.PrecoCusto
	if req.PrecoCusto != nil {
		custo = *req.PrecoCusto
	}

	perda := &model.Perda{
		ProdutoID:  pid,
		Qtd:        req.Qtd,
		Motivo:     req.Motivo,
		PrecoCusto: custo,
		Data:       hoje(),
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.produtoRepo.AjustarEstoqueTx(tx, pid, -req.Qtd, -req.Qtd); err != nil {
			return err
		}
		if err := s.repo.CreateTx(tx, perda); err != nil {
			return err
		}
		return s.cascataDespesaTx(tx, produto.Nome, req.Qtd, custo, perda.Data)
	})
	if txErr != nil {
		return nil, txErr
	}
	return perdaToResponse(perda), nil
}

func (s *perdaService) RegistrarDevolucaoTx(tx *gorm.DB, produto *model.Produto, qtd int) error {
	if err := s.produtoRepo.AjustarEstoqueTx(tx, produto.ID, -qtd, 0); err != nil {
		return err
	}
	perda := &model.Perda{
		ProdutoID:  produto.ID,
		Qtd:        qtd,
		Motivo:     "devolucao",
		PrecoCusto: produto.PrecoCusto,
		Data:       hoje(),
	}
	if err := s.repo.CreateTx(tx, perda); err != nil {
		return err
	}
	return s.cascataDespesaTx(tx, produto.Nome, qtd, produto.PrecoCusto, perda.Data)
}

// cascataDespesaTx mirrors the loss into the expense ledger when the cascade
// flag is on and the write-off carries a cost.
func (s *perdaService) cascataDespesaTx(tx *gorm.DB, nome string, qtd int, custo decimal.Decimal, data string) error {
	if !s.cfg.PerdaGeraDespesa || !custo.IsPositive() {
		return nil
	}
	despesa := &model.Despesa{
		Descricao: fmt.Sprintf("Perda: %s (%d cx)", nome, qtd),
		Valor:     custo.Mul(decimal.NewFromInt(int64(qtd))),
		Data:      data,
	}
	return s.despesaRepo.CreateTx(tx, despesa)
}

func (s *perdaService) Listar(ctx context.Context, de, ate string) ([]dto.PerdaResponse, error) {
	perdas, err := s.repo.List(ctx, de, ate)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PerdaResponse, len(perdas))
	for i := range perdas {
		resp[i] = *perdaToResponse(&perdas[i])
	}
	return resp, nil
}

func perdaToResponse(p *model.Perda) *dto.PerdaResponse {
	return &dto.PerdaResponse{
		ID:         p.ID.String(),
		ProdutoID:  p.ProdutoID.String(),
		Qtd:        p.Qtd,
		Motivo:     p.Motivo,
		PrecoCusto: p.PrecoCusto,
		Data:       p.Data,
	}
}
