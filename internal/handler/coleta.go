package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColetaHandler struct{ svc service.ColetaService }

func NewColetaHandler(svc service.ColetaService) *ColetaHandler {
	return &ColetaHandler{svc: svc}
}

func (h *ColetaHandler) Adicionar(c *gin.Context) {
	var req dto.AdicionarColetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adicionar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Alternar flips an item between pendente and coletado, applying or undoing
// all stock / cost / expense / divergence side effects.
func (h *ColetaHandler) Alternar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AlternarColetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Alternar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColetaHandler) Remover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ColetaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar a coleta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColetaHandler) ListarDivergencias(c *gin.Context) {
	resp, err := h.svc.ListarDivergencias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar divergências"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
