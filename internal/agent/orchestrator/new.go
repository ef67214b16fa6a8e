package orchestrator

import (
	"context"

	"eva-assistant/internal/agent"
	"eva-assistant/internal/conversation/repository"
	"eva-assistant/pkg/gemini"
	pkgLog "eva-assistant/pkg/log"
)

// ModelClient is the LLM dependency of the orchestrator.
type ModelClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// Orchestrator drives the tool-calling loop for one conversation turn.
type Orchestrator struct {
	llm      ModelClient
	registry *agent.Registry
	store    repository.Repository
	l        pkgLog.Logger
	timezone string
	maxSteps int

	// locks serializes history-read/append per session so two messages
	// from the same sender never interleave their turns.
	locks *sessionLocks
}

// Config holds the orchestrator tunables.
type Config struct {
	Timezone string
	MaxSteps int
}

// New creates an Orchestrator bound to a model client, a tool registry
// and a conversation store.
func New(llm ModelClient, registry *agent.Registry, store repository.Repository, l pkgLog.Logger, cfg Config) *Orchestrator {
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	return &Orchestrator{
		llm:      llm,
		registry: registry,
		store:    store,
		l:        l,
		timezone: timezone,
		maxSteps: maxSteps,
		locks:    newSessionLocks(),
	}
}
