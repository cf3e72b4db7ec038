package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/hypermedia"
)

// RootHandler serves the discovery document and the schema index. Both
// are open: clients need them before they hold a token.
type RootHandler struct {
	*BaseHandler
}

func NewRootHandler(base *BaseHandler) *RootHandler {
	return &RootHandler{BaseHandler: base}
}

func (h *RootHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/root/", h.Root)
	r.GET("/schema/", h.Schema)
}

func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, hypermedia.RootDocument(h.BasePath()))
}

func (h *RootHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, hypermedia.SchemaIndex())
}
