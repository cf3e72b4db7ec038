package routes

import (
	"github.com/gin-gonic/gin"

	"gigwork_backend/internal/config"
	"gigwork_backend/internal/handlers"
	"gigwork_backend/internal/middleware"
)

// BasePath is where the API mounts; the original deployment shape.
const BasePath = "/gigwork/api"

// RegisterRoutes wires all HTTP routes. Reads run with or without
// authentication depending on auth.open_reads; writes always require a
// token.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, cfg *config.Config) {
	write := middleware.AuthMiddleware()
	read := write
	if cfg.Auth.OpenReads {
		read = middleware.OptionalAuthMiddleware()
	}

	api := ginRouter.Group(BasePath)
	{
		appHandlers.RootHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, read, write)
		appHandlers.PostingHandler.RegisterRoutes(api, read, write)
		appHandlers.GigHandler.RegisterRoutes(api, read, write)
	}
}
