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

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes wires the user resource. Signup stays open; the read
// middleware is chosen by configuration, writes always authenticate.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, read, write gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/", h.Create)
		users.GET("/", read, h.List)
		users.GET("/:id/", read, h.Retrieve)
		users.PUT("/:id/", write, h.Update)
		users.DELETE("/:id/", write, h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	criteria := filter.Params(c.Request.URL.Query(), services.UserFilterFields)

	reps, err := h.userService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	env := hypermedia.NewCollection(reps, h.CollectionHref("users"),
		hypermedia.UserSchema(), services.UserFilterFields)
	c.JSON(http.StatusOK, env)
}

func (h *UserHandler) Retrieve(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.userService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("users", id)
	env := hypermedia.NewItem(rep, href)
	if middleware.GetUserID(c) == id {
		env.Writable(href, hypermedia.UserSchema())
	}
	c.JSON(http.StatusOK, env)
}

// Create is the signup endpoint: it registers the user and returns the
// freshly issued credential token alongside the enveloped representation.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	id, _ := resp.User["id"].(string)
	href := h.ItemHref("users", id)
	env := hypermedia.NewItem(resp.User, href).Writable(href, hypermedia.UserSchema())

	c.JSON(http.StatusCreated, gin.H{
		"token": resp.Token,
		"user":  env,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	rep, err := h.userService.Update(actorID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	href := h.ItemHref("users", id)
	c.JSON(http.StatusOK, hypermedia.NewItem(rep, href).Writable(href, hypermedia.UserSchema()))
}

func (h *UserHandler) Delete(c *gin.Context) {
	actorID, ok := h.RequireUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.userService.Delete(actorID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
