package service_test

import (
	"context"
	"testing"

	"github.com/misterzhermit/URSTORE/internal/config"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fecharDiaFixture struct {
	svc         service.FechamentoService
	repo        *stubFechamentoRepo
	pedidoRepo  *stubPedidoRepo
	produtoRepo *stubProdutoRepo
	despesaRepo *stubDespesaRepo
	coletaRepo  *stubColetaRepo
}

func buildFechamentoSvc(unicoPorDia bool) *fecharDiaFixture {
	f := &fecharDiaFixture{
		repo:        &stubFechamentoRepo{},
		pedidoRepo:  newStubPedidoRepo(),
		produtoRepo: newStubProdutoRepo(),
		despesaRepo: newStubDespesaRepo(),
		coletaRepo:  newStubColetaRepo(),
	}
	f.svc = service.NewFechamentoService(
		f.repo, f.pedidoRepo, f.produtoRepo, f.despesaRepo, f.coletaRepo,
		&config.Config{FechamentoUnicoPorDia: unicoPorDia},
	)
	return f
}

func (f *fecharDiaFixture) seedPedidoEntregue(produtoID uuid.UUID, qtd int, total float64, pagamento string) uuid.UUID {
	pedido := &model.Pedido{
		ClienteNome: "Cliente",
		Total:       decimal.NewFromFloat(total),
		Status:      "entregue",
		Pagamento:   pagamento,
		Data:        hojeStr(),
		Itens: []model.PedidoItem{
			{ProdutoID: produtoID, Qtd: qtd, PrecoNoPedido: decimal.NewFromFloat(total / float64(qtd))},
		},
	}
	_ = f.pedidoRepo.CreateTx(nil, pedido)
	return pedido.ID
}

func TestFecharDia_ArquivaPodaEReseeds(t *testing.T) {
	f := buildFechamentoSvc(true)
	// Sold out over the day: available ended at zero
	esgotado := seedProduto(f.produtoRepo, "Cerveja", 10, 4, 5, 0)
	sobrando := seedProduto(f.produtoRepo, "Água", 3, 1, 10, 7)

	pagoID := f.seedPedidoEntregue(esgotado.ID, 3, 30, "pago")
	fiadoID := f.seedPedidoEntregue(esgotado.ID, 2, 20, "fiado")

	_ = f.despesaRepo.Create(context.Background(), &model.Despesa{
		Descricao: "Gasolina", Valor: decimal.NewFromInt(5), Data: hojeStr(),
	})
	// Yesterday's expense stays out of today's close
	_ = f.despesaRepo.Create(context.Background(), &model.Despesa{
		Descricao: "Aluguel", Valor: decimal.NewFromInt(100), Data: "2000-01-01",
	})

	resp, err := f.svc.FecharDia(context.Background())
	require.NoError(t, err)

	// Revenue 30+20; COGS (3+2) × 4 = 20; expenses 5 → cost 25, profit 25
	assert.True(t, resp.FaturamentoTotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.CustoTotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, resp.LucroTotal.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, resp.QtdPedidos)
	assert.Equal(t, hojeStr(), resp.Data)

	// Prune: settled order gone, open tab survives
	_, err = f.pedidoRepo.FindByID(context.Background(), pagoID)
	assert.Error(t, err)
	_, err = f.pedidoRepo.FindByID(context.Background(), fiadoID)
	assert.NoError(t, err)

	// Re-seed: one pending request, quantity 1, only for the depleted product
	require.Len(t, f.coletaRepo.itens, 1)
	for _, item := range f.coletaRepo.itens {
		assert.Equal(t, esgotado.ID, item.ProdutoID)
		assert.Equal(t, 1, item.QtdSolicitada)
		assert.Equal(t, "pendente", item.Status)
		assert.NotEqual(t, sobrando.ID, item.ProdutoID)
	}
}

func TestFecharDia_NaoDuplicaColetaPendente(t *testing.T) {
	f := buildFechamentoSvc(true)
	esgotado := seedProduto(f.produtoRepo, "Cerveja", 10, 4, 5, 0)
	_ = f.coletaRepo.CreateTx(nil, &model.ItemColeta{
		ProdutoID: esgotado.ID, QtdSolicitada: 6, Status: "pendente", Data: hojeStr(),
	})

	_, err := f.svc.FecharDia(context.Background())
	require.NoError(t, err)

	// The existing pending request is kept as-is
	require.Len(t, f.coletaRepo.itens, 1)
	for _, item := range f.coletaRepo.itens {
		assert.Equal(t, 6, item.QtdSolicitada)
	}
}

func TestFecharDia_SegundoFechamentoRejeitado(t *testing.T) {
	f := buildFechamentoSvc(true)
	_, err := f.svc.FecharDia(context.Background())
	require.NoError(t, err)

	_, err = f.svc.FecharDia(context.Background())
	assert.ErrorContains(t, err, "já foi fechado")
	assert.Len(t, f.repo.fechamentos, 1)
}

func TestFecharDia_ReaberturaComFlagDesligada(t *testing.T) {
	f := buildFechamentoSvc(false)
	_, err := f.svc.FecharDia(context.Background())
	require.NoError(t, err)
	_, err = f.svc.FecharDia(context.Background())
	require.NoError(t, err)
	assert.Len(t, f.repo.fechamentos, 2)
}

func TestFecharDia_ProdutoDesconhecidoAborta(t *testing.T) {
	f := buildFechamentoSvc(true)
	f.seedPedidoEntregue(uuid.New(), 2, 20, "pago")

	_, err := f.svc.FecharDia(context.Background())
	assert.ErrorContains(t, err, "não encontrado ao apurar o custo do dia")
	assert.Empty(t, f.repo.fechamentos)
	assert.Len(t, f.pedidoRepo.pedidos, 1) // nothing pruned
}
