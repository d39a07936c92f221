package dto

import "github.com/shopspring/decimal"

type RegistrarPerdaRequest struct {
	ProdutoID string `json:"produto_id" validate:"required,uuid"`
	Qtd       int    `json:"qtd"        validate:"required,gt=0"`
	Motivo    string `json:"motivo"     validate:"required,oneof=estragado sobra devolucao outro"`
	// PrecoCusto overrides the snapshot; defaults to the product's current cost
	PrecoCusto *decimal.Decimal `json:"preco_custo" validate:"omitempty,min=0"`
}

type PerdaResponse struct {
	ID         string          `json:"id"`
	ProdutoID  string          `json:"produto_id"`
	Qtd        int             `json:"qtd"`
	Motivo     string          `json:"motivo"`
	PrecoCusto decimal.Decimal `json:"preco_custo"`
	Data       string          `json:"data"`
}
