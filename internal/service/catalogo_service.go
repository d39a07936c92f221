package service

import (
	"context"
	"errors"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	// Atualizar merges only the supplied fields. A missing id is a silent
	// no-op: it returns (nil, nil) without touching anything.
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
}

type catalogoService struct {
	repo repository.ProdutoRepository
}

func NewCatalogoService(repo repository.ProdutoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:              req.Nome,
		Emoji:             req.Emoji,
		PrecoVenda:        req.PrecoVenda,
		PrecoCusto:        req.PrecoCusto,
		EstoqueTotal:      req.EstoqueTotal,
		EstoqueDisponivel: req.EstoqueDisponivel,
		NCM:               req.NCM,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *catalogoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.Emoji != nil {
		campos["emoji"] = *req.Emoji
	}
	if req.PrecoVenda != nil {
		campos["preco_venda"] = *req.PrecoVenda
	}
	if req.PrecoCusto != nil {
		campos["preco_custo"] = *req.PrecoCusto
	}
	if req.EstoqueTotal != nil {
		campos["estoque_total"] = *req.EstoqueTotal
	}
	if req.EstoqueDisponivel != nil {
		campos["estoque_disponivel"] = *req.EstoqueDisponivel
	}
	if req.NCM != nil {
		campos["ncm"] = *req.NCM
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *catalogoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}
	return produtoToResponse(p), nil
}

func (s *catalogoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		resp[i] = *produtoToResponse(&produtos[i])
	}
	return resp, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:                p.ID.String(),
		Nome:              p.Nome,
		Emoji:             p.Emoji,
		PrecoVenda:        p.PrecoVenda,
		PrecoCusto:        p.PrecoCusto,
		EstoqueTotal:      p.EstoqueTotal,
		EstoqueDisponivel: p.EstoqueDisponivel,
		NCM:               p.NCM,
	}
}
