package app

import (
	"strings"
	"time"

	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"github.com/takashi605/blog-backend/internal/utils"
)

type Config struct {
	Port            string
	AdminJWTSecret  string
	AllowOrigins    []string
	Environment     string
	Version         string
	ShutdownTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	adminJWTSecret := utils.GetEnv("ADMIN_JWT_SECRET", "", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	version := utils.GetEnv("APP_VERSION", "dev", log)
	shutdownTimeoutSeconds := utils.GetEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10, log)

	allowOrigins := []string{}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowOrigins = append(allowOrigins, origin)
		}
	}

	return Config{
		Port:            port,
		AdminJWTSecret:  adminJWTSecret,
		AllowOrigins:    allowOrigins,
		Environment:     environment,
		Version:         version,
		ShutdownTimeout: time.Duration(shutdownTimeoutSeconds) * time.Second,
	}
}
