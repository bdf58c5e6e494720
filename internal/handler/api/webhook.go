package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps the raw payload read; gateway events are small.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	webhooks commands.WebhookCommands
	verifier *gateway.SignatureVerifier
	logger   *slog.Logger
}

func NewWebhookHandler(webhooks commands.WebhookCommands, verifier *gateway.SignatureVerifier, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhooks: webhooks,
		verifier: verifier,
		logger:   logger,
	}
}

// @Summary Receive payment gateway events
// @Description Verify the event signature and apply it exactly once
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Gateway-Signature header string true "Event signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	// The signature covers the exact bytes on the wire, so the body must be
	// read raw before any JSON binding.
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	if err := h.verifier.Verify(body, c.GetHeader(gateway.SignatureHeader)); err != nil {
		h.logger.WarnContext(c.Request.Context(), "webhook signature rejected",
			slog.String("reason", err.Error()), slog.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	ev, err := gateway.ParseEvent(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Malformed event payload",
		})
		return
	}

	result, err := h.webhooks.Process(c.Request.Context(), ev)
	if err != nil {
		if errors.Is(err, gateway.ErrMalformedEvent) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed event payload",
			})
			return
		}
		// A non-2xx tells the gateway to redeliver; the dedup ledger makes
		// the retry safe.
		h.logger.ErrorContext(c.Request.Context(), "webhook processing failed",
			slog.String("event_id", ev.ID), slog.String("type", ev.Type),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Event processing failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received":  true,
		"duplicate": result.Duplicate,
	})
}
