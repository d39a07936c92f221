package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProdutoID string `json:"produto_id" validate:"required,uuid"`
	Qtd       int    `json:"qtd"        validate:"required,gt=0"`
}

type CriarPedidoRequest struct {
	ClienteNome string              `json:"cliente_nome" validate:"required,min=1,max=120"`
	ClienteFone *string             `json:"cliente_fone"`
	Itens       []ItemPedidoRequest `json:"itens"        validate:"required,min=1,dive"`
	// Pagamento defaults to fiado when omitted
	Pagamento string `json:"pagamento" validate:"omitempty,oneof=fiado pago"`
}

// AtualizarPedidoRequest is a field-level merge. When Itens is supplied the
// whole item set is replaced and the total recomputed server-side; a
// caller-sent total is never trusted.
type AtualizarPedidoRequest struct {
	ClienteNome *string             `json:"cliente_nome" validate:"omitempty,min=1,max=120"`
	ClienteFone *string             `json:"cliente_fone"`
	Status      *string             `json:"status"    validate:"omitempty,oneof=pendente em_separacao entregue"`
	Pagamento   *string             `json:"pagamento" validate:"omitempty,oneof=fiado pago"`
	Itens       []ItemPedidoRequest `json:"itens"     validate:"omitempty,min=1,dive"`
}

// ItemSeparacaoRequest mirrors one order item in the separation checklist,
// positionally aligned with the order's item list.
type ItemSeparacaoRequest struct {
	Qtd      int  `json:"qtd"      validate:"required,gt=0"`
	Coletado bool `json:"coletado"`
}

type ConfirmarSeparacaoRequest struct {
	Itens []ItemSeparacaoRequest `json:"itens" validate:"required,min=1,dive"`
}

type DevolverItemRequest struct {
	// DevolverAoEstoque true returns the quantity to availability; false
	// records a formal write-off with reason "devolucao".
	DevolverAoEstoque bool `json:"devolver_ao_estoque"`
}

type QuitarFiadoRequest struct {
	ClienteNome string `json:"cliente_nome" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemPedidoResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Qtd           int             `json:"qtd"`
	QtdOriginal   *int            `json:"qtd_original"`
	PrecoNoPedido decimal.Decimal `json:"preco_no_pedido"`
	Coletado      bool            `json:"coletado"`
}

type PedidoResponse struct {
	ID          string               `json:"id"`
	ClienteNome string               `json:"cliente_nome"`
	ClienteFone *string              `json:"cliente_fone"`
	Itens       []ItemPedidoResponse `json:"itens"`
	Total       decimal.Decimal      `json:"total"`
	Status      string               `json:"status"`
	Pagamento   string               `json:"pagamento"`
	Hora        string               `json:"hora"`
	Data        string               `json:"data"`
}

type QuitarFiadoResponse struct {
	ClienteNome      string          `json:"cliente_nome"`
	PedidosQuitados  int             `json:"pedidos_quitados"`
	ValorQuitado     decimal.Decimal `json:"valor_quitado"`
}
