package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/filter"
	"gigwork_backend/internal/hypermedia"
	"gigwork_backend/internal/middleware"
	"gigwork_backend/internal/services"
	"gigwork_backend/internal/services/dto"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(r *gin.RouterGroup, read, write gin.HandlerFunc) {
	gigs := r.Group("/gigs")
	{
		gigs.GET("/", read, h.List)
		gigs.GET("/:id/", read, h.Retrieve)
		gigs.POST("/", write, h.Create)
		gigs.PUT("/:id/", write, h.Update)
		gigs.DELETE("/:id/", write, h.Delete)
	}
}

func (h *GigHandler) List(c *gin.Context) {
	criteria := filter.Params(c.Request.URL.Query(), services.GigFilterFields)

	reps, err := h.gigService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	env := hypermedia.NewCollection(reps, h.CollectionHref("gigs"),
		hypermedia.GigSchema(), services.GigFilterFields)
	c.JSON(http.StatusOK, env)
}

func (h *GigHandler) Retrieve(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.gigService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("gigs", id)
	env := hypermedia.NewItem(rep, href)
	if actor := middleware.GetUserID(c); actor != "" && actor == ownerID(rep) {
		env.Writable(href, hypermedia.GigSchema())
	}
	c.JSON(http.StatusOK, env)
}

// Create accepts a posting on behalf of the acting identity.
func (h *GigHandler) Create(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rep, err := h.gigService.Create(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	id, _ := rep["id"].(string)
	href := h.ItemHref("gigs", id)
	c.JSON(http.StatusCreated, hypermedia.NewItem(rep, href).Writable(href, hypermedia.GigSchema()))
}

func (h *GigHandler) Update(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req dto.UpdateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rep, err := h.gigService.Update(actorID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("gigs", id)
	c.JSON(http.StatusOK, hypermedia.NewItem(rep, href).Writable(href, hypermedia.GigSchema()))
}

func (h *GigHandler) Delete(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.gigService.Delete(actorID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
