package service_test

import (
	"context"
	"testing"

	"github.com/misterzhermit/URSTORE/internal/config"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPerdaSvc(cascata bool) (service.PerdaService, *stubPerdaRepo, *stubProdutoRepo, *stubDespesaRepo) {
	perdaRepo := &stubPerdaRepo{}
	produtoRepo := newStubProdutoRepo()
	despesaRepo := newStubDespesaRepo()
	svc := service.NewPerdaService(perdaRepo, produtoRepo, despesaRepo, &config.Config{PerdaGeraDespesa: cascata})
	return svc, perdaRepo, produtoRepo, despesaRepo
}

func TestRegistrarPerda_BaixaEstoqueComClamp(t *testing.T) {
	svc, perdaRepo, produtoRepo, _ := buildPerdaSvc(true)
	p := seedProduto(produtoRepo, "Alface", 3, 1, 3, 3)

	resp, err := svc.Registrar(context.Background(), dto.RegistrarPerdaRequest{
		ProdutoID: p.ID.String(), Qtd: 5, Motivo: "estragado",
	})
	require.NoError(t, err)

	// Write-off larger than stock floors at zero instead of going negative
	assert.Equal(t, 0, produtoRepo.produtos[p.ID].EstoqueTotal)
	assert.Equal(t, 0, produtoRepo.produtos[p.ID].EstoqueDisponivel)

	require.Len(t, perdaRepo.perdas, 1)
	assert.Equal(t, 5, perdaRepo.perdas[0].Qtd)
	assert.Equal(t, hojeStr(), resp.Data)
}

func TestRegistrarPerda_CustoSnapshotDoProduto(t *testing.T) {
	svc, perdaRepo, produtoRepo, _ := buildPerdaSvc(false)
	p := seedProduto(produtoRepo, "Tomate", 4, 2.5, 10, 10)

	_, err := svc.Registrar(context.Background(), dto.RegistrarPerdaRequest{
		ProdutoID: p.ID.String(), Qtd: 2, Motivo: "sobra",
	})
	require.NoError(t, err)

	// Cost snapshot frozen at write-off time
	produtoRepo.produtos[p.ID].PrecoCusto = decimal.NewFromInt(99)
	assert.True(t, perdaRepo.perdas[0].PrecoCusto.Equal(decimal.NewFromFloat(2.5)))
}

func TestRegistrarPerda_CascataGeraDespesa(t *testing.T) {
	svc, _, produtoRepo, despesaRepo := buildPerdaSvc(true)
	p := seedProduto(produtoRepo, "Queijo", 15, 8, 10, 10)

	_, err := svc.Registrar(context.Background(), dto.RegistrarPerdaRequest{
		ProdutoID: p.ID.String(), Qtd: 3, Motivo: "estragado",
	})
	require.NoError(t, err)

	despesas := despesaRepo.todas()
	require.Len(t, despesas, 1)
	assert.Equal(t, "Perda: Queijo (3 cx)", despesas[0].Descricao)
	assert.True(t, despesas[0].Valor.Equal(decimal.NewFromInt(24)))
}

func TestRegistrarPerda_CascataDesligada(t *testing.T) {
	svc, _, produtoRepo, despesaRepo := buildPerdaSvc(false)
	p := seedProduto(produtoRepo, "Queijo", 15, 8, 10, 10)

	_, err := svc.Registrar(context.Background(), dto.RegistrarPerdaRequest{
		ProdutoID: p.ID.String(), Qtd: 3, Motivo: "estragado",
	})
	require.NoError(t, err)
	assert.Empty(t, despesaRepo.todas())
}

func TestRegistrarPerda_CustoZeroNaoGeraDespesa(t *testing.T) {
	svc, _, produtoRepo, despesaRepo := buildPerdaSvc(true)
	p := seedProduto(produtoRepo, "Brinde", 1, 0, 10, 10)

	_, err := svc.Registrar(context.Background(), dto.RegistrarPerdaRequest{
		ProdutoID: p.ID.String(), Qtd: 2, Motivo: "outro",
	})
	require.NoError(t, err)
	assert.Empty(t, despesaRepo.todas())
}
