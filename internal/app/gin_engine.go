package app

import (
	"log/slog"
	"net/http"
	"slices"

	"MotoYaCheckout/config"
	"MotoYaCheckout/pkg/logger"
	"MotoYaCheckout/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger, cfg config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		bodyLimit(cfg.MaxBodyBytes),
		logger.RequestLogger(l),
		cors.New(corsConfig(cfg.CORSAllowOrigins)),
	)
	return engine
}

// bodyLimit caps every request body. Reads past the limit fail and handlers treat the body as empty.
func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Correlation-ID")
	cfg.ExposeHeaders = []string{"X-Correlation-ID"}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
