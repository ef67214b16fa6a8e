package usecase

import (
	"context"

	"eva-assistant/internal/model"
)

func (uc *implUseCase) ListContacts(ctx context.Context, sc model.Scope) ([]string, error) {
	contacts, err := uc.convo.ListSessions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "admin.ListContacts: %v", err)
		return nil, err
	}
	return contacts, nil
}

func (uc *implUseCase) SessionHistory(ctx context.Context, sc model.Scope, sessionID string) ([]model.ChatMessage, error) {
	history, err := uc.convo.History(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "admin.SessionHistory: %v", err)
		return nil, err
	}
	return history, nil
}
