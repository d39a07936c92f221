package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpresaHandler struct{ svc service.EmpresaService }

func NewEmpresaHandler(svc service.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{svc: svc}
}

func (h *EmpresaHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpresaHandler) Salvar(c *gin.Context) {
	var req dto.SalvarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Salvar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
