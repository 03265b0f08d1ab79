package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/takashi605/blog-backend/internal/http/handlers"
	"github.com/takashi605/blog-backend/internal/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterConfig struct {
	HealthHandler  *handlers.HealthHandler
	BlogHandler    *handlers.BlogHandler
	AdminHandler   *handlers.AdminBlogHandler
	ImageHandler   *handlers.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("blog-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	blog := router.Group("/blog")
	{
		blog.GET("/posts/latest", cfg.BlogHandler.GetLatestPosts)
		blog.GET("/posts/top-tech-pick", cfg.BlogHandler.GetTopTechPick)
		blog.GET("/posts/pickup", cfg.BlogHandler.GetPickUpPosts)
		blog.GET("/posts/popular", cfg.BlogHandler.GetPopularPosts)
		blog.GET("/posts/:id", cfg.BlogHandler.GetPost)
		blog.GET("/images", cfg.ImageHandler.ListImages)
	}

	// ===============
	// || Admin     ||
	// ===============
	admin := router.Group("/admin/blog")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/posts", cfg.AdminHandler.ListPosts)
		admin.POST("/posts", cfg.AdminHandler.CreatePost)
		admin.PUT("/posts/top-tech-pick", cfg.AdminHandler.PutTopTechPick)
		admin.PUT("/posts/pickup", cfg.AdminHandler.PutPickUpPosts)
		admin.PUT("/posts/popular", cfg.AdminHandler.PutPopularPosts)
		admin.GET("/posts/:id", cfg.AdminHandler.GetPost)
		admin.PUT("/posts/:id", cfg.AdminHandler.UpdatePost)
		admin.POST("/images", cfg.ImageHandler.RegisterImage)
	}

	return router
}
