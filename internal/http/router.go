package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"message-composer/internal/service"
)

// RouterConfig agrupa las opciones de transporte del router.
type RouterConfig struct {
	AllowedOrigins []string
	// TrustedProxies vacío hace que ClientIP use solo RemoteAddr e ignore X-Forwarded-For.
	TrustedProxies []string
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	cfg RouterConfig,
	limiter service.GenerationRateLimiter,
	statusH *StatusHandler,
	messageH *MessageHandler,
) (*gin.Engine, error) {
	r := gin.New()

	var trusted []string
	for _, p := range cfg.TrustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			trusted = append(trusted, p)
		}
	}
	if err := r.SetTrustedProxies(trusted); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(cfg.AllowedOrigins), jsonContentTypeMiddleware())

	r.GET("/", statusH.Root)
	r.GET("/health", statusH.Health)

	api := r.Group("/api")
	api.GET("/test", statusH.APITest)
	api.POST("/generate-message", rateLimitMiddleware(logger, limiter), messageH.GenerateMessage)
	api.GET("/templates", messageH.ListTemplates)
	api.GET("/messages", messageH.ListMessages)

	return r, nil
}
