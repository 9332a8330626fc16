package linebot

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentEvents bounds the goroutines spent on one webhook batch.
const maxConcurrentEvents = 8

const rateLimitedMessage = "短時間に多くのメッセージを受け付けました。しばらくしてから再度お試しください。"

const failureMessage = "検索中にエラーが発生しました。しばらくしてから再度お試しください。"

// Replier sends a reply through the Messaging API.
// *messaging_api.MessagingApiAPI implements it.
type Replier interface {
	ReplyMessage(*messaging_api.ReplyMessageRequest) (*messaging_api.ReplyMessageResponse, error)
}

// WebhookHandler receives LINE webhook callbacks and replies to text messages.
type WebhookHandler struct {
	channelSecret string
	responder     *Responder
	replier       Replier
	limiter       *SourceLimiter
}

// NewWebhookHandler creates a webhook handler. limiter may be nil to disable rate limiting.
func NewWebhookHandler(channelSecret string, responder *Responder, replier Replier, limiter *SourceLimiter) *WebhookHandler {
	return &WebhookHandler{
		channelSecret: channelSecret,
		responder:     responder,
		replier:       replier,
		limiter:       limiter,
	}
}

// Callback handles POST /callback requests. The SDK verifies the signature.
func (h *WebhookHandler) Callback(c *gin.Context) {
	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
			return
		}
		log.Error().Err(err).Msg("cannot parse webhook request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.HandleEvents(c.Request.Context(), cb.Events)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleEvents answers the text messages in events concurrently.
// Events in one batch are independent and may be answered in any order.
func (h *WebhookHandler) HandleEvents(ctx context.Context, events []webhook.EventInterface) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentEvents)

	for _, event := range events {
		e, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}
		message, ok := e.Message.(webhook.TextMessageContent)
		if !ok {
			continue
		}

		g.Go(func() error {
			h.handleText(ctx, e.ReplyToken, sourceKey(e.Source), message.Text)
			return nil
		})
	}

	_ = g.Wait()
}

func (h *WebhookHandler) handleText(ctx context.Context, replyToken, source, text string) {
	logger := log.With().Str("source", source).Logger()

	var reply string
	if h.limiter != nil && source != "" && !h.limiter.Allow(source) {
		logger.Warn().Msg("rate limited")
		reply = rateLimitedMessage
	} else {
		var err error
		reply, err = h.responder.Reply(ctx, text)
		if err != nil {
			logger.Error().Err(err).Msg("cannot build reply")
			reply = failureMessage
		}
	}

	_, err := h.replier.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: reply},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("cannot send reply")
		return
	}
	logger.Debug().Int("reply_bytes", len(reply)).Msg("reply sent")
}

// sourceKey identifies the rate limit bucket of source, or "" when the source
// type is not known. Unknown sources are not rate limited.
func sourceKey(source webhook.SourceInterface) string {
	switch s := source.(type) {
	case webhook.UserSource:
		return "user:" + s.UserId
	case webhook.GroupSource:
		return "group:" + s.GroupId
	case webhook.RoomSource:
		return "room:" + s.RoomId
	default:
		return ""
	}
}
