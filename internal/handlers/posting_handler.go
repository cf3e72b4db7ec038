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

type PostingHandler struct {
	*BaseHandler
	postingService services.PostingService
}

func NewPostingHandler(base *BaseHandler, postingService services.PostingService) *PostingHandler {
	return &PostingHandler{
		BaseHandler:    base,
		postingService: postingService,
	}
}

func (h *PostingHandler) RegisterRoutes(r *gin.RouterGroup, read, write gin.HandlerFunc) {
	postings := r.Group("/postings")
	{
		postings.GET("/", read, h.List)
		postings.GET("/:id/", read, h.Retrieve)
		postings.POST("/", write, h.Create)
		postings.PUT("/:id/", write, h.Update)
		postings.DELETE("/:id/", write, h.Delete)
	}
}

func (h *PostingHandler) List(c *gin.Context) {
	criteria := filter.Params(c.Request.URL.Query(), services.PostingFilterFields)

	reps, err := h.postingService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	env := hypermedia.NewCollection(reps, h.CollectionHref("postings"),
		hypermedia.PostingSchema(), services.PostingFilterFields)
	c.JSON(http.StatusOK, env)
}

func (h *PostingHandler) Retrieve(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.postingService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("postings", id)
	env := hypermedia.NewItem(rep, href)
	if actor := middleware.GetUserID(c); actor != "" && actor == ownerID(rep) {
		env.Writable(href, hypermedia.PostingSchema())
	}
	c.JSON(http.StatusOK, env)
}

func (h *PostingHandler) Create(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.PostingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rep, err := h.postingService.Create(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	id, _ := rep["id"].(string)
	href := h.ItemHref("postings", id)
	c.JSON(http.StatusCreated, hypermedia.NewItem(rep, href).Writable(href, hypermedia.PostingSchema()))
}

func (h *PostingHandler) Update(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req dto.PostingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rep, err := h.postingService.Update(actorID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("postings", id)
	c.JSON(http.StatusOK, hypermedia.NewItem(rep, href).Writable(href, hypermedia.PostingSchema()))
}

func (h *PostingHandler) Delete(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.postingService.Delete(actorID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ownerID digs the owner id out of a representation carrying a nested
// public owner.
func ownerID(rep map[string]interface{}) string {
	owner, ok := rep["owner"].(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := owner["id"].(string)
	return id
}
