package dto

import "github.com/shopspring/decimal"

// ─── Daily summary ───────────────────────────────────────────────────────────

type DesempenhoProduto struct {
	ProdutoID   string          `json:"produto_id"`
	Nome        string          `json:"nome"`
	Emoji       string          `json:"emoji"`
	Vendidos    int             `json:"vendidos"`
	Faturamento decimal.Decimal `json:"faturamento"`
	Custo       decimal.Decimal `json:"custo"`
	Margem      decimal.Decimal `json:"margem"`
}

type ResumoDiarioResponse struct {
	Data            string              `json:"data"`
	Faturamento     decimal.Decimal     `json:"faturamento"`
	Custo           decimal.Decimal     `json:"custo"`
	Despesas        decimal.Decimal     `json:"despesas"`
	Lucro           decimal.Decimal     `json:"lucro"`
	PedidosEntregues int                `json:"pedidos_entregues"`
	Divergencias    int64               `json:"divergencias"`
	PorProduto      []DesempenhoProduto `json:"por_produto"`
}

// ─── Monthly balance ─────────────────────────────────────────────────────────

type RecebivelCliente struct {
	ClienteNome string          `json:"cliente_nome"`
	Pedidos     int             `json:"pedidos"`
	Valor       decimal.Decimal `json:"valor"`
}

type BalancoMensalResponse struct {
	Mes              string                  `json:"mes"`
	FaturamentoTotal decimal.Decimal         `json:"faturamento_total"`
	CustoTotal       decimal.Decimal         `json:"custo_total"`
	LucroTotal       decimal.Decimal         `json:"lucro_total"`
	DiasFechados     int                     `json:"dias_fechados"`
	Recebiveis       []RecebivelCliente      `json:"recebiveis"`
	Historico        []FechamentoDiaResponse `json:"historico"`
}

// ─── Full state snapshot ─────────────────────────────────────────────────────

// SnapshotResponse is the persisted-state shape: one document with every
// entity list, used for device sync and backup export.
type SnapshotResponse struct {
	Empresa      *EmpresaResponse        `json:"empresa"`
	Produtos     []ProdutoResponse       `json:"produtos"`
	Pedidos      []PedidoResponse        `json:"pedidos"`
	Coleta       []ItemColetaResponse    `json:"coleta"`
	Divergencias []DivergenciaResponse   `json:"divergencias"`
	Despesas     []DespesaResponse       `json:"despesas"`
	Historico    []FechamentoDiaResponse `json:"historico"`
	Perdas       []PerdaResponse         `json:"perdas"`
}
