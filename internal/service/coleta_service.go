package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ColetaService interface {
	// Adicionar merges with an existing pending item for the same
	// produto+data instead of duplicating it.
	Adicionar(ctx context.Context, req dto.AdicionarColetaRequest) (*dto.ItemColetaResponse, error)
	// Alternar flips pendente⇄coletado and applies (or undoes) the stock,
	// cost, expense and divergence side effects as a single unit.
	Alternar(ctx context.Context, id uuid.UUID, req dto.AlternarColetaRequest) (*dto.ItemColetaResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.ItemColetaResponse, error)
	ListarDivergencias(ctx context.Context) ([]dto.DivergenciaResponse, error)
}

type coletaService struct {
	repo        repository.ColetaRepository
	produtoRepo repository.ProdutoRepository
	despesaRepo repository.DespesaRepository
}

func NewColetaService(
	repo repository.ColetaRepository,
	produtoRepo repository.ProdutoRepository,
	despesaRepo repository.DespesaRepository,
) ColetaService {
	return &coletaService{repo: repo, produtoRepo: produtoRepo, despesaRepo: despesaRepo}
}

func (s *coletaService) Adicionar(ctx context.Context, req dto.AdicionarColetaRequest) (*dto.ItemColetaResponse, error) {
	pid, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, fmt.Errorf("produto_id inválido: %w", err)
	}
	produto, err := s.produtoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	data := hoje()
	var item *model.ItemColeta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		existente, err := s.repo.FindPendenteDoDiaTx(tx, pid, data)
		if err == nil {
			if err := s.repo.IncrementarSolicitadaTx(tx, existente.ID, req.QtdSolicitada); err != nil {
				return err
			}
			existente.QtdSolicitada += req.QtdSolicitada
			item = existente
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		item = &model.ItemColeta{
			ProdutoID:     pid,
			QtdSolicitada: req.QtdSolicitada,
			Status:        "pendente",
			Data:          data,
		}
		return s.repo.CreateTx(tx, item)
	})
	if txErr != nil {
		return nil, txErr
	}
	return itemColetaToResponse(item, produto.Nome, produto.Emoji), nil
}

func (s *coletaService) Alternar(ctx context.Context, id uuid.UUID, req dto.AlternarColetaRequest) (*dto.ItemColetaResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("item de coleta não encontrado")
	}
	// The product must resolve: both directions move stock and money.
	produto, err := s.produtoRepo.FindByID(ctx, item.ProdutoID)
	if err != nil {
		return nil, errors.New("produto do item de coleta não encontrado")
	}

	if item.Status == "pendente" {
		err = s.coletar(ctx, item, produto, req)
	} else {
		err = s.desfazer(ctx, item, produto)
	}
	if err != nil {
		return nil, err
	}
	return itemColetaToResponse(item, produto.Nome, produto.Emoji), nil
}

// coletar applies the pendente→coletado side effects in order: stock up on
// both fields, cost overwrite (when positive), auto expense (when positive),
// divergence log (when entregue != solicitado).
func (s *coletaService) coletar(ctx context.Context, item *model.ItemColeta, produto *model.Produto, req dto.AlternarColetaRequest) error {
	entregue := item.QtdSolicitada
	if req.QtdEntregue != nil {
		entregue = *req.QtdEntregue
	}
	custo := decimal.Zero
	switch {
	case req.PrecoCusto != nil:
		custo = *req.PrecoCusto
	case item.PrecoCusto != nil:
		custo = *item.PrecoCusto
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.produtoRepo.AjustarEstoqueTx(tx, produto.ID, entregue, entregue); err != nil {
			return err
		}
		if custo.IsPositive() {
			if err := s.produtoRepo.AtualizarCustoTx(tx, produto.ID, custo); err != nil {
				return err
			}
			despesa := &model.Despesa{
				Descricao: fmt.Sprintf("Compra: %s (%d cx)", produto.Nome, entregue),
				Valor:     custo.Mul(decimal.NewFromInt(int64(entregue))),
				Data:      item.Data,
			}
			if err := s.despesaRepo.CreateTx(tx, despesa); err != nil {
				return err
			}
		}
		if entregue != item.QtdSolicitada {
			div := &model.Divergencia{
				ItemColetaID:  item.ID,
				ProdutoID:     produto.ID,
				ProdutoNome:   produto.Nome,
				QtdSolicitada: item.QtdSolicitada,
				QtdEntregue:   entregue,
				Diferenca:     entregue - item.QtdSolicitada,
				PrecoCusto:    custo,
				Data:          item.Data,
			}
			if err := s.repo.CreateDivergenciaTx(tx, div); err != nil {
				return err
			}
		}
		item.Status = "coletado"
		item.QtdEntregue = &entregue
		item.PrecoCusto = &custo
		return s.repo.UpdateTx(tx, item)
	})
}

// desfazer reverts a collected item: stock down (clamped at zero), the
// divergence row removed by item id, the auto expense removed by description
// prefix + date. PrecoCusto is kept as the default for a later re-toggle.
func (s *coletaService) desfazer(ctx context.Context, item *model.ItemColeta, produto *model.Produto) error {
	entregue := item.QtdSolicitada
	if item.QtdEntregue != nil {
		entregue = *item.QtdEntregue
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.produtoRepo.AjustarEstoqueTx(tx, produto.ID, -entregue, -entregue); err != nil {
			return err
		}
		if err := s.repo.DeleteDivergenciaPorItemTx(tx, item.ID); err != nil {
			return err
		}
		if item.PrecoCusto != nil && item.PrecoCusto.IsPositive() {
			prefixo := fmt.Sprintf("Compra: %s (", produto.Nome)
			if err := s.despesaRepo.DeleteCompraAutomaticaTx(tx, prefixo, item.Data); err != nil {
				return err
			}
		}
		item.Status = "pendente"
		item.QtdEntregue = nil
		return s.repo.UpdateTx(tx, item)
	})
}

func (s *coletaService) Remover(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("item de coleta não encontrado")
	}
	if item.Status == "coletado" {
		// Allowed, but the stock/expense side effects stay orphaned.
		log.Warn().Str("item_id", id.String()).Msg("removendo item de coleta já coletado")
	}
	return s.repo.Delete(ctx, id)
}

func (s *coletaService) Listar(ctx context.Context) ([]dto.ItemColetaResponse, error) {
	itens, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	nomes, emojis, err := s.mapaProdutos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemColetaResponse, len(itens))
	for i := range itens {
		resp[i] = *itemColetaToResponse(&itens[i], nomes[itens[i].ProdutoID], emojis[itens[i].ProdutoID])
	}
	return resp, nil
}

func (s *coletaService) ListarDivergencias(ctx context.Context) ([]dto.DivergenciaResponse, error) {
	divs, err := s.repo.ListDivergencias(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DivergenciaResponse, len(divs))
	for i := range divs {
		resp[i] = *divergenciaToResponse(&divs[i])
	}
	return resp, nil
}

func (s *coletaService) mapaProdutos(ctx context.Context) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	nomes := make(map[uuid.UUID]string, len(produtos))
	emojis := make(map[uuid.UUID]string, len(produtos))
	for _, p := range produtos {
		nomes[p.ID] = p.Nome
		emojis[p.ID] = p.Emoji
	}
	return nomes, emojis, nil
}

func itemColetaToResponse(item *model.ItemColeta, nome, emoji string) *dto.ItemColetaResponse {
	return &dto.ItemColetaResponse{
		ID:            item.ID.String(),
		ProdutoID:     item.ProdutoID.String(),
		ProdutoNome:   nome,
		ProdutoEmoji:  emoji,
		QtdSolicitada: item.QtdSolicitada,
		QtdEntregue:   item.QtdEntregue,
		PrecoCusto:    item.PrecoCusto,
		Status:        item.Status,
		Data:          item.Data,
	}
}

func divergenciaToResponse(d *model.Divergencia) *dto.DivergenciaResponse {
	return &dto.DivergenciaResponse{
		ID:            d.ID.String(),
		ProdutoID:     d.ProdutoID.String(),
		ProdutoNome:   d.ProdutoNome,
		QtdSolicitada: d.QtdSolicitada,
		QtdEntregue:   d.QtdEntregue,
		Diferenca:     d.Diferenca,
		PrecoCusto:    d.PrecoCusto,
		Data:          d.Data,
	}
}
