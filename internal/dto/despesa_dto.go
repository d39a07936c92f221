package dto

import "github.com/shopspring/decimal"

type AdicionarDespesaRequest struct {
	Descricao string          `json:"descricao" validate:"required,min=1,max=200"`
	Valor     decimal.Decimal `json:"valor"     validate:"required,gt=0"`
	// Data defaults to today when omitted (2006-01-02)
	Data string `json:"data" validate:"omitempty,datetime=2006-01-02"`
}

type DespesaFilter struct {
	De  string `form:"de"  validate:"omitempty,datetime=2006-01-02"`
	Ate string `form:"ate" validate:"omitempty,datetime=2006-01-02"`
}

type DespesaResponse struct {
	ID        string          `json:"id"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data"`
}
