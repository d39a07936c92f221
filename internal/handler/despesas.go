package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DespesasHandler struct{ svc service.DespesaService }

func NewDespesasHandler(svc service.DespesaService) *DespesasHandler {
	return &DespesasHandler{svc: svc}
}

func (h *DespesasHandler) Adicionar(c *gin.Context) {
	var req dto.AdicionarDespesaRequest
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

func (h *DespesasHandler) Remover(c *gin.Context) {
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

func (h *DespesasHandler) Listar(c *gin.Context) {
	var filter dto.DespesaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro de datas inválido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar despesas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
