package service

import (
	"context"
	"errors"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RelatorioService is the read side: pure aggregations, no mutations.
type RelatorioService interface {
	ResumoDiario(ctx context.Context) (*dto.ResumoDiarioResponse, error)
	// BalancoMensal aggregates the closed days of a month ("2006-01",
	// defaults to the current one) plus outstanding fiado receivables.
	BalancoMensal(ctx context.Context, mes string) (*dto.BalancoMensalResponse, error)
	// Snapshot exports the full persisted state as one document, for device
	// sync and backup.
	Snapshot(ctx context.Context) (*dto.SnapshotResponse, error)
}

type relatorioService struct {
	pedidoRepo     repository.PedidoRepository
	produtoRepo    repository.ProdutoRepository
	despesaRepo    repository.DespesaRepository
	coletaRepo     repository.ColetaRepository
	perdaRepo      repository.PerdaRepository
	fechamentoRepo repository.FechamentoRepository
	empresaRepo    repository.EmpresaRepository
}

func NewRelatorioService(
	pedidoRepo repository.PedidoRepository,
	produtoRepo repository.ProdutoRepository,
	despesaRepo repository.DespesaRepository,
	coletaRepo repository.ColetaRepository,
	perdaRepo repository.PerdaRepository,
	fechamentoRepo repository.FechamentoRepository,
	empresaRepo repository.EmpresaRepository,
) RelatorioService {
	return &relatorioService{
		pedidoRepo:     pedidoRepo,
		produtoRepo:    produtoRepo,
		despesaRepo:    despesaRepo,
		coletaRepo:     coletaRepo,
		perdaRepo:      perdaRepo,
		fechamentoRepo: fechamentoRepo,
		empresaRepo:    empresaRepo,
	}
}

func (s *relatorioService) ResumoDiario(ctx context.Context) (*dto.ResumoDiarioResponse, error) {
	data := hoje()

	entregues, err := s.pedidoRepo.ListEntreguesDoDia(ctx, data)
	if err != nil {
		return nil, err
	}
	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]*model.Produto, len(produtos))
	for i := range produtos {
		porID[produtos[i].ID] = &produtos[i]
	}

	faturamento := decimal.Zero
	custo := decimal.Zero
	desempenho := make(map[uuid.UUID]*dto.DesempenhoProduto)
	var ordem []uuid.UUID
	for _, pedido := range entregues {
		faturamento = faturamento.Add(pedido.Total)
		for _, item := range pedido.Itens {
			d, ok := desempenho[item.ProdutoID]
			if !ok {
				d = &dto.DesempenhoProduto{ProdutoID: item.ProdutoID.String(), Nome: "produto removido"}
				if p, found := porID[item.ProdutoID]; found {
					d.Nome = p.Nome
					d.Emoji = p.Emoji
				}
				desempenho[item.ProdutoID] = d
				ordem = append(ordem, item.ProdutoID)
			}
			qtd := decimal.NewFromInt(int64(item.Qtd))
			d.Vendidos += item.Qtd
			d.Faturamento = d.Faturamento.Add(item.PrecoNoPedido.Mul(qtd))
			if p, found := porID[item.ProdutoID]; found {
				linha := p.PrecoCusto.Mul(qtd)
				d.Custo = d.Custo.Add(linha)
				custo = custo.Add(linha)
			}
			d.Margem = d.Faturamento.Sub(d.Custo)
		}
	}

	despesas, err := s.despesaRepo.ListPorData(ctx, data)
	if err != nil {
		return nil, err
	}
	totalDespesas := decimal.Zero
	for _, d := range despesas {
		totalDespesas = totalDespesas.Add(d.Valor)
	}

	divergencias, err := s.coletaRepo.CountDivergenciasPorData(ctx, data)
	if err != nil {
		return nil, err
	}

	porProduto := make([]dto.DesempenhoProduto, 0, len(ordem))
	for _, id := range ordem {
		porProduto = append(porProduto, *desempenho[id])
	}

	return &dto.ResumoDiarioResponse{
		Data:             data,
		Faturamento:      faturamento,
		Custo:            custo,
		Despesas:         totalDespesas,
		Lucro:            faturamento.Sub(custo.Add(totalDespesas)),
		PedidosEntregues: len(entregues),
		Divergencias:     divergencias,
		PorProduto:       porProduto,
	}, nil
}

func (s *relatorioService) BalancoMensal(ctx context.Context, mes string) (*dto.BalancoMensalResponse, error) {
	if mes == "" {
		mes = hoje()[:7]
	}

	dias, err := s.fechamentoRepo.ListPorMes(ctx, mes)
	if err != nil {
		return nil, err
	}
	faturamento := decimal.Zero
	custo := decimal.Zero
	lucro := decimal.Zero
	historico := make([]dto.FechamentoDiaResponse, len(dias))
	for i := range dias {
		faturamento = faturamento.Add(dias[i].FaturamentoTotal)
		custo = custo.Add(dias[i].CustoTotal)
		lucro = lucro.Add(dias[i].LucroTotal)
		historico[i] = *fechamentoToResponse(&dias[i])
	}

	fiados, err := s.pedidoRepo.ListFiado(ctx)
	if err != nil {
		return nil, err
	}
	porCliente := make(map[string]*dto.RecebivelCliente)
	var clientes []string
	for _, p := range fiados {
		r, ok := porCliente[p.ClienteNome]
		if !ok {
			r = &dto.RecebivelCliente{ClienteNome: p.ClienteNome}
			porCliente[p.ClienteNome] = r
			clientes = append(clientes, p.ClienteNome)
		}
		r.Pedidos++
		r.Valor = r.Valor.Add(p.Total)
	}
	recebiveis := make([]dto.RecebivelCliente, 0, len(clientes))
	for _, c := range clientes {
		recebiveis = append(recebiveis, *porCliente[c])
	}

	return &dto.BalancoMensalResponse{
		Mes:              mes,
		FaturamentoTotal: faturamento,
		CustoTotal:       custo,
		LucroTotal:       lucro,
		DiasFechados:     len(dias),
		Recebiveis:       recebiveis,
		Historico:        historico,
	}, nil
}

func (s *relatorioService) Snapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	snap := &dto.SnapshotResponse{}

	empresa, err := s.empresaRepo.Get(ctx)
	if err == nil {
		snap.Empresa = empresaToResponse(empresa)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	produtos, err := s.produtoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	nomes := make(map[uuid.UUID]string, len(produtos))
	emojis := make(map[uuid.UUID]string, len(produtos))
	snap.Produtos = make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		snap.Produtos[i] = *produtoToResponse(&produtos[i])
		nomes[produtos[i].ID] = produtos[i].Nome
		emojis[produtos[i].ID] = produtos[i].Emoji
	}

	pedidos, err := s.pedidoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snap.Pedidos = make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		snap.Pedidos[i] = *pedidoToResponse(&pedidos[i])
	}

	coleta, err := s.coletaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snap.Coleta = make([]dto.ItemColetaResponse, len(coleta))
	for i := range coleta {
		snap.Coleta[i] = *itemColetaToResponse(&coleta[i], nomes[coleta[i].ProdutoID], emojis[coleta[i].ProdutoID])
	}

	divergencias, err := s.coletaRepo.ListDivergencias(ctx)
	if err != nil {
		return nil, err
	}
	snap.Divergencias = make([]dto.DivergenciaResponse, len(divergencias))
	for i := range divergencias {
		snap.Divergencias[i] = *divergenciaToResponse(&divergencias[i])
	}

	despesas, err := s.despesaRepo.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	snap.Despesas = make([]dto.DespesaResponse, len(despesas))
	for i := range despesas {
		snap.Despesas[i] = *despesaToResponse(&despesas[i])
	}

	dias, err := s.fechamentoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snap.Historico = make([]dto.FechamentoDiaResponse, len(dias))
	for i := range dias {
		snap.Historico[i] = *fechamentoToResponse(&dias[i])
	}

	perdas, err := s.perdaRepo.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	snap.Perdas = make([]dto.PerdaResponse, len(perdas))
	for i := range perdas {
		snap.Perdas[i] = *perdaToResponse(&perdas[i])
	}

	return snap, nil
}
