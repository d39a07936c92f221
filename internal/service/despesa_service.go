package service

import (
	"context"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
)

type DespesaService interface {
	Adicionar(ctx context.Context, req dto.AdicionarDespesaRequest) (*dto.DespesaResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, filter dto.DespesaFilter) ([]dto.DespesaResponse, error)
}

type despesaService struct {
	repo repository.DespesaRepository
}

func NewDespesaService(repo repository.DespesaRepository) DespesaService {
	return &despesaService{repo: repo}
}

func (s *despesaService) Adicionar(ctx context.Context, req dto.AdicionarDespesaRequest) (*dto.DespesaResponse, error) {
	data := req.Data
	if data == "" {
		data = hoje()
	}
	d := &model.Despesa{Descricao: req.Descricao, Valor: req.Valor, Data: data}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return despesaToResponse(d), nil
}

func (s *despesaService) Remover(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *despesaService) Listar(ctx context.Context, filter dto.DespesaFilter) ([]dto.DespesaResponse, error) {
	despesas, err := s.repo.List(ctx, filter.De, filter.Ate)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DespesaResponse, len(despesas))
	for i := range despesas {
		resp[i] = *despesaToResponse(&despesas[i])
	}
	return resp, nil
}

func despesaToResponse(d *model.Despesa) *dto.DespesaResponse {
	return &dto.DespesaResponse{
		ID:        d.ID.String(),
		Descricao: d.Descricao,
		Valor:     d.Valor,
		Data:      d.Data,
	}
}
