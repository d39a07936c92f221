package handler

import (
	"net/http"

	"github.com/misterzhermit/URSTORE/internal/apierror"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminHandler exposes destructive maintenance operations. Routes using it
// must sit behind RequireRole("administrador").
type AdminHandler struct{ reset repository.ResetRepository }

func NewAdminHandler(reset repository.ResetRepository) *AdminHandler {
	return &AdminHandler{reset: reset}
}

// Reset wipes all operational data. Users and the business profile survive.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.reset.LimparTudo(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao resetar os dados"))
		return
	}
	log.Warn().Msg("all operational data wiped by admin reset")
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
