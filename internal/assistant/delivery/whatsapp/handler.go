package whatsapp

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgWhatsapp "eva-assistant/pkg/whatsapp"
)

// HandleVerify answers Meta's webhook verification handshake.
// @Summary Verify webhook subscription
// @Tags webhook
// @Produce plain
// @Param hub.mode query string true "Subscription mode"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string
// @Failure 403 {string} string
// @Router /webhook [get]
func (h *Handler) HandleVerify(c *gin.Context) {
	ctx := c.Request.Context()

	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken && h.verifyToken != "" {
		h.l.Infof(ctx, "Webhook verified successfully")
		c.String(http.StatusOK, challenge)
		return
	}

	h.l.Warnf(ctx, "Webhook verification failed: mode=%q", mode)
	c.String(http.StatusForbidden, "Forbidden")
}

// HandleWebhook ingests WhatsApp message notifications. The payload is
// acknowledged no matter what so Meta does not retry; processing runs
// in the background.
// @Summary Receive WhatsApp events
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /webhook [post]
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var payload pkgWhatsapp.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Warnf(ctx, "Ignoring malformed webhook payload: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	sender, text, ok := extractTextMessage(payload)
	if !ok {
		// Status updates, media, reactions: acknowledged and dropped.
		h.l.Debugf(ctx, "Webhook carried no text message, ignoring")
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	if err := h.rateLimiter.Allow(sender); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	h.l.Infof(ctx, "Received message from %s", sender)

	h.jobs.Dispatch("whatsapp_reply", func(jobCtx context.Context) {
		reply := h.responder.Respond(jobCtx, sender, text)
		h.deliverer.Deliver(jobCtx, sender, reply)
	})

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// extractTextMessage digs the first inbound text message out of the
// Graph API envelope. Any missing layer means there is nothing to do.
func extractTextMessage(payload pkgWhatsapp.WebhookPayload) (sender, text string, ok bool) {
	if len(payload.Entry) == 0 {
		return "", "", false
	}
	entry := payload.Entry[0]
	if len(entry.Changes) == 0 {
		return "", "", false
	}
	value := entry.Changes[0].Value
	if len(value.Messages) == 0 {
		return "", "", false
	}
	msg := value.Messages[0]
	if msg.From == "" || msg.Text == nil || msg.Text.Body == "" {
		return "", "", false
	}
	return msg.From, msg.Text.Body, true
}
