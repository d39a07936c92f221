package dto

import "github.com/shopspring/decimal"

type FechamentoDiaResponse struct {
	ID               string          `json:"id"`
	Data             string          `json:"data"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
	CustoTotal       decimal.Decimal `json:"custo_total"`
	LucroTotal       decimal.Decimal `json:"lucro_total"`
	QtdPedidos       int             `json:"qtd_pedidos"`
}
