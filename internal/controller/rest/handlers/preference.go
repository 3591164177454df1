package handlers

import (
	"log/slog"
	"net/http"

	"MotoYaCheckout/internal/domain/checkout"
	"MotoYaCheckout/pkg/logger"
	"MotoYaCheckout/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const createPreferenceError = "Error al crear la preferencia"

type PreferenceHandler struct {
	service           *checkout.Service
	trustProxyHeaders bool
}

func NewPreferenceHandler(s *checkout.Service, trustProxyHeaders bool) *PreferenceHandler {
	return &PreferenceHandler{
		service:           s,
		trustProxyHeaders: trustProxyHeaders,
	}
}

type CreatePreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *PreferenceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	body := readBody(c)
	slog.InfoContext(ctx, "Create preference request received", "body", string(logger.Limit(body)))

	order := checkout.DecodeOrderRequest(body)
	baseURL := BaseURL(c.Request, h.trustProxyHeaders)

	session, err := h.service.CreatePreference(ctx, order, baseURL)
	if err != nil {
		metrics.PreferencesTotal.WithLabelValues(metrics.ResultFailed).Inc()
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   createPreferenceError,
			Message: err.Error(),
		})
		return
	}

	metrics.PreferencesTotal.WithLabelValues(metrics.ResultCreated).Inc()
	c.JSON(http.StatusOK, CreatePreferenceResponse{
		ID:        session.ID,
		InitPoint: session.InitPoint,
	})
}
