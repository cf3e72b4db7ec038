package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gigwork_backend/pkg/apperrors"
)

// Handler serves the cached statistics document.
type Handler struct {
	poller *Poller
}

func NewHandler(poller *Poller) *Handler {
	return &Handler{poller: poller}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/stats", h.Stats)
}

// Stats returns the latest combined document. Until the first poll cycle
// succeeds there is nothing to serve and the handler answers 503.
func (h *Handler) Stats(c *gin.Context) {
	combined, updatedAt, ok := h.poller.Latest()
	if !ok {
		apperrors.HandleError(c, apperrors.New(
			apperrors.CodeNotReady, "stats",
			"Statistics not collected yet", http.StatusServiceUnavailable))
		return
	}

	c.Header("X-Stats-Updated-At", updatedAt.Format(time.RFC3339))
	c.JSON(http.StatusOK, combined)
}
