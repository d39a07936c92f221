package service_test

import (
	"context"
	"testing"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdicionarDespesa_DataDefaultHoje(t *testing.T) {
	repo := newStubDespesaRepo()
	svc := service.NewDespesaService(repo)

	resp, err := svc.Adicionar(context.Background(), dto.AdicionarDespesaRequest{
		Descricao: "Gasolina", Valor: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, hojeStr(), resp.Data)

	retro, err := svc.Adicionar(context.Background(), dto.AdicionarDespesaRequest{
		Descricao: "Aluguel", Valor: decimal.NewFromInt(800), Data: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", retro.Data)
}

func TestListarDespesas_FiltroPorPeriodo(t *testing.T) {
	repo := newStubDespesaRepo()
	svc := service.NewDespesaService(repo)

	for _, d := range []dto.AdicionarDespesaRequest{
		{Descricao: "A", Valor: decimal.NewFromInt(1), Data: "2026-08-01"},
		{Descricao: "B", Valor: decimal.NewFromInt(2), Data: "2026-08-15"},
		{Descricao: "C", Valor: decimal.NewFromInt(3), Data: "2026-09-01"},
	} {
		_, err := svc.Adicionar(context.Background(), d)
		require.NoError(t, err)
	}

	lista, err := svc.Listar(context.Background(), dto.DespesaFilter{De: "2026-08-01", Ate: "2026-08-31"})
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "A", lista[0].Descricao)
	assert.Equal(t, "B", lista[1].Descricao)
}

func TestRemoverDespesa(t *testing.T) {
	repo := newStubDespesaRepo()
	svc := service.NewDespesaService(repo)

	resp, err := svc.Adicionar(context.Background(), dto.AdicionarDespesaRequest{
		Descricao: "Gelo", Valor: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remover(context.Background(), uuid.MustParse(resp.ID)))
	lista, err := svc.Listar(context.Background(), dto.DespesaFilter{})
	require.NoError(t, err)
	assert.Empty(t, lista)
}
