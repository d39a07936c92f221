package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome              string          `json:"nome"        validate:"required,min=1,max=120"`
	Emoji             string          `json:"emoji"`
	PrecoVenda        decimal.Decimal `json:"preco_venda" validate:"required,min=0"`
	PrecoCusto        decimal.Decimal `json:"preco_custo" validate:"min=0"`
	EstoqueTotal      int             `json:"estoque_total"      validate:"min=0"`
	EstoqueDisponivel int             `json:"estoque_disponivel" validate:"min=0"`
	NCM               *string         `json:"ncm"`
}

// AtualizarProdutoRequest is a field-level merge: only supplied keys change.
// Stock fields are absolute values here, not deltas — callers own keeping
// total/disponivel consistent.
type AtualizarProdutoRequest struct {
	Nome              *string          `json:"nome"        validate:"omitempty,min=1,max=120"`
	Emoji             *string          `json:"emoji"`
	PrecoVenda        *decimal.Decimal `json:"preco_venda" validate:"omitempty,min=0"`
	PrecoCusto        *decimal.Decimal `json:"preco_custo" validate:"omitempty,min=0"`
	EstoqueTotal      *int             `json:"estoque_total"      validate:"omitempty,min=0"`
	EstoqueDisponivel *int             `json:"estoque_disponivel" validate:"omitempty,min=0"`
	NCM               *string          `json:"ncm"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID                string          `json:"id"`
	Nome              string          `json:"nome"`
	Emoji             string          `json:"emoji"`
	PrecoVenda        decimal.Decimal `json:"preco_venda"`
	PrecoCusto        decimal.Decimal `json:"preco_custo"`
	EstoqueTotal      int             `json:"estoque_total"`
	EstoqueDisponivel int             `json:"estoque_disponivel"`
	NCM               *string         `json:"ncm"`
}
