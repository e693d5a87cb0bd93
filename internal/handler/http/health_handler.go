package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/handler/http/dto"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store contract.IPinger
}

func NewHealthHandler(store contract.IPinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health answers 503 when the engagement store cannot be reached or is not configured.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		SuccessHandler(c, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
