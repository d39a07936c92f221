package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AdicionarColetaRequest struct {
	ProdutoID     string `json:"produto_id"     validate:"required,uuid"`
	QtdSolicitada int    `json:"qtd_solicitada" validate:"required,gt=0"`
}

// AlternarColetaRequest carries the receipt-time figures for a
// pendente→coletado toggle. Both are optional: qtd_entregue defaults to the
// requested quantity, preco_custo to the item's last stored cost. Ignored on
// the undo direction.
type AlternarColetaRequest struct {
	QtdEntregue *int             `json:"qtd_entregue" validate:"omitempty,gt=0"`
	PrecoCusto  *decimal.Decimal `json:"preco_custo"  validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemColetaResponse struct {
	ID            string           `json:"id"`
	ProdutoID     string           `json:"produto_id"`
	ProdutoNome   string           `json:"produto_nome"`
	ProdutoEmoji  string           `json:"produto_emoji"`
	QtdSolicitada int              `json:"qtd_solicitada"`
	QtdEntregue   *int             `json:"qtd_entregue"`
	PrecoCusto    *decimal.Decimal `json:"preco_custo"`
	Status        string           `json:"status"`
	Data          string           `json:"data"`
}

type DivergenciaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome"`
	QtdSolicitada int             `json:"qtd_solicitada"`
	QtdEntregue   int             `json:"qtd_entregue"`
	Diferenca     int             `json:"diferenca"`
	PrecoCusto    decimal.Decimal `json:"preco_custo"`
	Data          string          `json:"data"`
}
