package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/logger"
	"gigwork_backend/internal/validator"
	"gigwork_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
	basePath  string
}

func NewBaseHandler(v *validator.Validator, basePath string) *BaseHandler {
	return &BaseHandler{
		validator: v,
		basePath:  strings.TrimSuffix(basePath, "/"),
	}
}

// BindAndValidateJSON decodes and validates a write payload. A non-JSON
// content type is a distinct 415 outcome, never coerced into a bind error.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if ct := c.ContentType(); ct != "application/json" {
		logger.CtxWarn(ctx, "Unsupported media type", "content_type", ct, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewUnsupportedMediaTypeError(ct))
		return false
	}

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError logs and writes an error coming back from a service.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RequireUserID extracts the acting identity; absent identity is a 401.
func (h *BaseHandler) RequireUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: no identity",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user identity"))
		return "", false
	}

	return userID, true
}

// CollectionHref builds the canonical collection URI for a resource.
func (h *BaseHandler) CollectionHref(resource string) string {
	return h.basePath + "/" + resource + "/"
}

// ItemHref builds the canonical instance URI for a resource.
func (h *BaseHandler) ItemHref(resource, id string) string {
	return h.CollectionHref(resource) + id + "/"
}

// BasePath is the API mount point, e.g. /gigwork/api.
func (h *BaseHandler) BasePath() string {
	return h.basePath
}
