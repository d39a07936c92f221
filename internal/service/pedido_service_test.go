package service_test

import (
	"context"
	"testing"

	"github.com/misterzhermit/URSTORE/internal/config"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPedidoSvc() (service.PedidoService, *stubPedidoRepo, *stubProdutoRepo, *stubPerdaRepo, *stubDespesaRepo) {
	pedidoRepo := newStubPedidoRepo()
	produtoRepo := newStubProdutoRepo()
	perdaRepo := &stubPerdaRepo{}
	despesaRepo := newStubDespesaRepo()
	perdaSvc := service.NewPerdaService(perdaRepo, produtoRepo, despesaRepo, &config.Config{PerdaGeraDespesa: true})
	svc := service.NewPedidoService(pedidoRepo, produtoRepo, perdaSvc, nil)
	return svc, pedidoRepo, produtoRepo, perdaRepo, despesaRepo
}

func TestCriarPedido_TravaPrecoEDecrementaDisponivel(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Cerveja lata", 10, 5, 8, 8)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Dona Maria",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 3}},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "pendente", resp.Status)
	assert.Equal(t, "fiado", resp.Pagamento) // default payment state
	require.Len(t, resp.Itens, 1)
	assert.True(t, resp.Itens[0].PrecoNoPedido.Equal(decimal.NewFromInt(10)))

	// Availability reserved, nominal total untouched
	assert.Equal(t, 5, produtoRepo.produtos[p.ID].EstoqueDisponivel)
	assert.Equal(t, 8, produtoRepo.produtos[p.ID].EstoqueTotal)
}

func TestCriarPedido_DisponivelClampadoEmZero(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Suco", 4, 2, 8, 8)

	_, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Seu João",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, produtoRepo.produtos[p.ID].EstoqueDisponivel)
}

func TestCriarPedido_ProdutoInexistente(t *testing.T) {
	svc, _, _, _, _ := buildPedidoSvc()
	_, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Cliente",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: uuid.New().String(), Qtd: 1}},
	})
	assert.ErrorContains(t, err, "não encontrado")
}

func TestAtualizarPedido_MantemPrecoTravado(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Vinho", 20, 12, 10, 10)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Dona Maria",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 2}},
	})
	require.NoError(t, err)

	// Price raise after the order must not leak into it
	produtoRepo.produtos[p.ID].PrecoVenda = decimal.NewFromInt(50)

	atualizado, err := svc.Atualizar(context.Background(), uuid.MustParse(resp.ID), dto.AtualizarPedidoRequest{
		Itens: []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 4}},
	})
	require.NoError(t, err)
	assert.True(t, atualizado.Total.Equal(decimal.NewFromInt(80))) // 4 × 20, not 4 × 50
}

func TestAvancarStatus_FluxoCompleto(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Cerveja", 10, 5, 10, 10)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Zé",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 1}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	r1, err := svc.AvancarStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "em_separacao", r1.Status)

	r2, err := svc.AvancarStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "entregue", r2.Status)

	_, err = svc.AvancarStatus(context.Background(), id)
	assert.ErrorContains(t, err, "já entregue")
}

func TestConfirmarSeparacao_RecalculaTotalEVoltaPendente(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Água", 3, 1, 20, 20)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Bar do Centro",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 5}},
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	iniciado, err := svc.IniciarSeparacao(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "em_separacao", iniciado.Status)
	require.NotNil(t, iniciado.Itens[0].QtdOriginal)
	assert.Equal(t, 5, *iniciado.Itens[0].QtdOriginal)

	confirmado, err := svc.ConfirmarSeparacao(context.Background(), id, dto.ConfirmarSeparacaoRequest{
		Itens: []dto.ItemSeparacaoRequest{{Qtd: 3, Coletado: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pendente", confirmado.Status)
	assert.True(t, confirmado.Total.Equal(decimal.NewFromInt(9))) // 3 × 3
	assert.True(t, confirmado.Itens[0].Coletado)
}

func TestConfirmarSeparacao_ChecklistComTamanhoErrado(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Água", 3, 1, 20, 20)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Bar",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 5}},
	})
	require.NoError(t, err)

	_, err = svc.ConfirmarSeparacao(context.Background(), uuid.MustParse(resp.ID), dto.ConfirmarSeparacaoRequest{
		Itens: []dto.ItemSeparacaoRequest{{Qtd: 1}, {Qtd: 2}},
	})
	assert.ErrorContains(t, err, "não corresponde")
}

func TestDevolverItem_AoEstoque(t *testing.T) {
	svc, _, produtoRepo, perdaRepo, _ := buildPedidoSvc()
	a := seedProduto(produtoRepo, "A", 10, 5, 10, 10)
	b := seedProduto(produtoRepo, "B", 6, 3, 10, 10)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Cliente",
		Itens: []dto.ItemPedidoRequest{
			{ProdutoID: a.ID.String(), Qtd: 2},
			{ProdutoID: b.ID.String(), Qtd: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, produtoRepo.produtos[a.ID].EstoqueDisponivel)

	devolvido, err := svc.DevolverItem(context.Background(), uuid.MustParse(resp.ID), 0, dto.DevolverItemRequest{
		DevolverAoEstoque: true,
	})
	require.NoError(t, err)

	require.Len(t, devolvido.Itens, 1)
	assert.True(t, devolvido.Total.Equal(decimal.NewFromInt(18))) // only B: 3 × 6
	assert.Equal(t, 10, produtoRepo.produtos[a.ID].EstoqueDisponivel)
	assert.Empty(t, perdaRepo.perdas)
}

func TestDevolverItem_ComoPerda(t *testing.T) {
	svc, _, produtoRepo, perdaRepo, despesaRepo := buildPedidoSvc()
	a := seedProduto(produtoRepo, "Queijo", 15, 8, 10, 10)
	b := seedProduto(produtoRepo, "Pão", 2, 1, 10, 10)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Cliente",
		Itens: []dto.ItemPedidoRequest{
			{ProdutoID: a.ID.String(), Qtd: 2},
			{ProdutoID: b.ID.String(), Qtd: 1},
		},
	})
	require.NoError(t, err)

	_, err = svc.DevolverItem(context.Background(), uuid.MustParse(resp.ID), 0, dto.DevolverItemRequest{
		DevolverAoEstoque: false,
	})
	require.NoError(t, err)

	// A formal loss with reason devolucao; only the nominal total dropped,
	// availability already left at order creation
	require.Len(t, perdaRepo.perdas, 1)
	assert.Equal(t, "devolucao", perdaRepo.perdas[0].Motivo)
	assert.Equal(t, 2, perdaRepo.perdas[0].Qtd)
	assert.Equal(t, 8, produtoRepo.produtos[a.ID].EstoqueTotal)
	assert.Equal(t, 8, produtoRepo.produtos[a.ID].EstoqueDisponivel)

	// Loss cascade mirrored into expenses: 2 × 8 = 16
	despesas := despesaRepo.todas()
	require.Len(t, despesas, 1)
	assert.True(t, despesas[0].Valor.Equal(decimal.NewFromInt(16)))
}

func TestDevolverItem_UltimoItemEntregaPedido(t *testing.T) {
	svc, _, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Único", 5, 2, 10, 10)

	resp, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Cliente",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 1}},
	})
	require.NoError(t, err)

	devolvido, err := svc.DevolverItem(context.Background(), uuid.MustParse(resp.ID), 0, dto.DevolverItemRequest{
		DevolverAoEstoque: true,
	})
	require.NoError(t, err)
	assert.Empty(t, devolvido.Itens)
	assert.Equal(t, "entregue", devolvido.Status)
	assert.True(t, devolvido.Total.IsZero())
}

func TestQuitarFiado_LiquidaTodosDoCliente(t *testing.T) {
	svc, pedidoRepo, produtoRepo, _, _ := buildPedidoSvc()
	p := seedProduto(produtoRepo, "Cerveja", 10, 5, 50, 50)

	for range [2]struct{}{} {
		_, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
			ClienteNome: "Dona Maria",
			Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 2}},
		})
		require.NoError(t, err)
	}
	// A different client's tab must be left alone
	outro, err := svc.Criar(context.Background(), dto.CriarPedidoRequest{
		ClienteNome: "Seu João",
		Itens:       []dto.ItemPedidoRequest{{ProdutoID: p.ID.String(), Qtd: 1}},
	})
	require.NoError(t, err)

	resp, err := svc.QuitarFiado(context.Background(), "Dona Maria")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.PedidosQuitados)
	assert.True(t, resp.ValorQuitado.Equal(decimal.NewFromInt(40)))

	for _, pd := range pedidoRepo.pedidos {
		if pd.ClienteNome == "Dona Maria" {
			assert.Equal(t, "pago", pd.Pagamento)
			assert.Equal(t, "entregue", pd.Status)
		}
	}
	intacto, _ := pedidoRepo.FindByID(context.Background(), uuid.MustParse(outro.ID))
	assert.Equal(t, "fiado", intacto.Pagamento)
}

func TestQuitarFiado_SemPedidos(t *testing.T) {
	svc, _, _, _, _ := buildPedidoSvc()
	_, err := svc.QuitarFiado(context.Background(), "Ninguém")
	assert.ErrorContains(t, err, "nenhum pedido fiado")
}
