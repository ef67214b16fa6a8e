package whatsapp

import (
	"context"

	pkgLog "eva-assistant/pkg/log"
)

// Responder produces the assistant's reply for one inbound message.
type Responder interface {
	Respond(ctx context.Context, sessionID, inputText string) string
}

// Deliverer sends the reply back to the user.
type Deliverer interface {
	Deliver(ctx context.Context, recipientID, text string)
}

// JobRunner detaches reply work from the webhook request.
type JobRunner interface {
	Dispatch(name string, job func(ctx context.Context)) string
}

type Config struct {
	VerifyToken     string
	RateLimitPerMin int
}

type Handler struct {
	responder   Responder
	deliverer   Deliverer
	jobs        JobRunner
	verifyToken string
	rateLimiter *rateLimiter
	l           pkgLog.Logger
}

func NewHandler(
	responder Responder,
	deliverer Deliverer,
	jobs JobRunner,
	cfg Config,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		responder:   responder,
		deliverer:   deliverer,
		jobs:        jobs,
		verifyToken: cfg.VerifyToken,
		rateLimiter: newRateLimiter(cfg.RateLimitPerMin),
		l:           l,
	}
}
