package dto

type SalvarEmpresaRequest struct {
	Nome     string  `json:"nome" validate:"required,min=1,max=120"`
	Ramo     string  `json:"ramo" validate:"max=60"`
	CNPJ     *string `json:"cnpj" validate:"omitempty,max=18"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone"`
}

type EmpresaResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Ramo     string  `json:"ramo"`
	CNPJ     *string `json:"cnpj"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone"`
}
