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

type FechamentoService interface {
	// FecharDia archives today's delivered revenue, cost and profit, prunes
	// settled orders and re-seeds the collection list for depleted products.
	// All steps commit together or not at all.
	FecharDia(ctx context.Context) (*dto.FechamentoDiaResponse, error)
	Historico(ctx context.Context) ([]dto.FechamentoDiaResponse, error)
}

type fechamentoService struct {
	repo        repository.FechamentoRepository
	pedidoRepo  repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
	despesaRepo repository.DespesaRepository
	coletaRepo  repository.ColetaRepository
	cfg         *config.Config
}

func NewFechamentoService(
	repo repository.FechamentoRepository,
	pedidoRepo repository.PedidoRepository,
	produtoRepo repository.ProdutoRepository,
	despesaRepo repository.DespesaRepository,
	coletaRepo repository.ColetaRepository,
	cfg *config.Config,
) FechamentoService {
	return &fechamentoService{
		repo:        repo,
		pedidoRepo:  pedidoRepo,
		produtoRepo: produtoRepo,
		despesaRepo: despesaRepo,
		coletaRepo:  coletaRepo,
		cfg:         cfg,
	}
}

func (s *fechamentoService) FecharDia(ctx context.Context) (*dto.FechamentoDiaResponse, error) {
	data := hoje()

	if s.cfg.FechamentoUnicoPorDia {
		fechado, err := s.repo.ExistePorData(ctx, data)
		if err != nil {
			return nil, err
		}
		if fechado {
			return nil, errors.New("o dia já foi fechado")
		}
	}

	// 1-2. Today's delivered orders: revenue from locked order totals, COGS
	// at the product's cost as it stands right now. A product missing during
	// COGS is a hard error — closing with silently underreported cost would
	// poison the history.
	entregues, err := s.pedidoRepo.ListEntreguesDoDia(ctx, data)
	if err != nil {
		return nil, err
	}
	faturamento := decimal.Zero
	custo := decimal.Zero
	custoPorProduto := make(map[uuid.UUID]decimal.Decimal)
	for _, pedido := range entregues {
		faturamento = faturamento.Add(pedido.Total)
		for _, item := range pedido.Itens {
			unitario, ok := custoPorProduto[item.ProdutoID]
			if !ok {
				produto, err := s.produtoRepo.FindByID(ctx, item.ProdutoID)
				if err != nil {
					return nil, fmt.Errorf("produto %s não encontrado ao apurar o custo do dia", item.ProdutoID)
				}
				unitario = produto.PrecoCusto
				custoPorProduto[item.ProdutoID] = unitario
			}
			custo = custo.Add(unitario.Mul(decimal.NewFromInt(int64(item.Qtd))))
		}
	}

	// 3. Expenses of the day (manual + auto purchase entries).
	despesas, err := s.despesaRepo.ListPorData(ctx, data)
	if err != nil {
		return nil, err
	}
	totalDespesas := decimal.Zero
	for _, d := range despesas {
		totalDespesas = totalDespesas.Add(d.Valor)
	}

	// 4. Profit and the history row.
	custoTotal := custo.Add(totalDespesas)
	fechamento := &model.FechamentoDia{
		Data:             data,
		FaturamentoTotal: faturamento,
		CustoTotal:       custoTotal,
		LucroTotal:       faturamento.Sub(custoTotal),
		QtdPedidos:       len(entregues),
	}

	esgotados, err := s.produtoRepo.ListSemDisponivel(ctx)
	if err != nil {
		return nil, err
	}

	// 5-6. Archive, prune and re-seed as one unit.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, fechamento); err != nil {
			return err
		}
		for _, pedido := range entregues {
			if pedido.Pagamento != "pago" {
				// Fiado orders survive the close until settled.
				continue
			}
			if err := s.pedidoRepo.DeleteTx(tx, pedido.ID); err != nil {
				return err
			}
		}
		for _, produto := range esgotados {
			_, err := s.coletaRepo.FindPendenteDoDiaTx(tx, produto.ID, data)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			item := &model.ItemColeta{
				ProdutoID:     produto.ID,
				QtdSolicitada: 1,
				Status:        "pendente",
				Data:          data,
			}
			if err := s.coletaRepo.CreateTx(tx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return fechamentoToResponse(fechamento), nil
}

func (s *fechamentoService) Historico(ctx context.Context) ([]dto.FechamentoDiaResponse, error) {
	dias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FechamentoDiaResponse, len(dias))
	for i := range dias {
		resp[i] = *fechamentoToResponse(&dias[i])
	}
	return resp, nil
}

func fechamentoToResponse(f *model.FechamentoDia) *dto.FechamentoDiaResponse {
	return &dto.FechamentoDiaResponse{
		ID:               f.ID.String(),
		Data:             f.Data,
		FaturamentoTotal: f.FaturamentoTotal,
		CustoTotal:       f.CustoTotal,
		LucroTotal:       f.LucroTotal,
		QtdPedidos:       f.QtdPedidos,
	}
}
