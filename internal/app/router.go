package app

import (
	"github.com/gin-gonic/gin"
	"github.com/takashi605/blog-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		HealthHandler:  handlerset.Health,
		BlogHandler:    handlerset.Blog,
		AdminHandler:   handlerset.Admin,
		ImageHandler:   handlerset.Image,
		AuthMiddleware: middlewareset.Auth,
		AllowOrigins:   cfg.AllowOrigins,
	})
}
