package service

import (
	"context"
	"errors"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"gorm.io/gorm"
)

type EmpresaService interface {
	Obter(ctx context.Context) (*dto.EmpresaResponse, error)
	// Salvar creates the profile on first call and updates it afterwards.
	Salvar(ctx context.Context, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error)
}

type empresaService struct {
	repo repository.EmpresaRepository
}

func NewEmpresaService(repo repository.EmpresaRepository) EmpresaService {
	return &empresaService{repo: repo}
}

func (s *empresaService) Obter(ctx context.Context) (*dto.EmpresaResponse, error) {
	e, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.New("empresa não configurada")
	}
	return empresaToResponse(e), nil
}

func (s *empresaService) Salvar(ctx context.Context, req dto.SalvarEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := s.repo.Get(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		e = &model.Empresa{}
	} else if err != nil {
		return nil, err
	}

	e.Nome = req.Nome
	e.Ramo = req.Ramo
	e.CNPJ = req.CNPJ
	e.Endereco = req.Endereco
	e.Telefone = req.Telefone
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return empresaToResponse(e), nil
}

func empresaToResponse(e *model.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:       e.ID.String(),
		Nome:     e.Nome,
		Ramo:     e.Ramo,
		CNPJ:     e.CNPJ,
		Endereco: e.Endereco,
		Telefone: e.Telefone,
	}
}
