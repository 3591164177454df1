package rest

import (
	"MotoYaCheckout/internal/controller/rest/handlers"
	"MotoYaCheckout/pkg/health"
	"MotoYaCheckout/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	preference     *handlers.PreferenceHandler
	webhook        *handlers.WebhookHandler
	static         *handlers.StaticHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/create_preference", r.preference.Create)
	engine.POST("/webhook", r.webhook.Receive)

	// Frontend assets, everything else falls back to index.html
	engine.NoRoute(r.static.Serve)
}

func NewRouter(
	preference *handlers.PreferenceHandler,
	webhook *handlers.WebhookHandler,
	static *handlers.StaticHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		preference:     preference,
		webhook:        webhook,
		static:         static,
		healthRegistry: healthRegistry,
	}
}
