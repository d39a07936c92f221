package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

func (h *RelatoriosHandler) ResumoDiario(c *gin.Context) {
	resp, err := h.svc.ResumoDiario(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o resumo diário"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BalancoMensal accepts ?mes=2006-01; defaults to the current month.
func (h *RelatoriosHandler) BalancoMensal(c *gin.Context) {
	resp, err := h.svc.BalancoMensal(c.Request.Context(), c.Query("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RelatoriosHandler) Snapshot(c *gin.Context) {
	resp, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao exportar o snapshot"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
