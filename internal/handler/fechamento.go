package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
)

type FechamentoHandler struct{ svc service.FechamentoService }

func NewFechamentoHandler(svc service.FechamentoService) *FechamentoHandler {
	return &FechamentoHandler{svc: svc}
}

// FecharDia archives today's numbers and resets the operation for tomorrow.
// Conflicts (day already closed) come back as 409.
func (h *FechamentoHandler) FecharDia(c *gin.Context) {
	resp, err := h.svc.FecharDia(c.Request.Context())
	if err != nil {
		status := http.StatusBadRequest
		if err.Error() == "o dia já foi fechado" {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FechamentoHandler) Historico(c *gin.Context) {
	resp, err := h.svc.Historico(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar o histórico de fechamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
