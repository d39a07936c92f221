package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
)

type PerdasHandler struct{ svc service.PerdaService }

func NewPerdasHandler(svc service.PerdaService) *PerdasHandler {
	return &PerdasHandler{svc: svc}
}

func (h *PerdasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPerdaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PerdasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("de"), c.Query("ate"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar perdas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
