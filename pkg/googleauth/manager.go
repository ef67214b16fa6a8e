package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes are the Google Workspace scopes the assistant needs.
// They must match the scopes used when token.json was generated
// (see scripts/google-auth).
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/spreadsheets",
}

// Manager owns the OAuth2 token for the Google Workspace tools.
// Refresh is serialized behind a mutex so concurrent tool calls never
// race two refreshes against each other; the refreshed token is written
// back to tokenPath so restarts keep the newest refresh token.
type Manager struct {
	config    *oauth2.Config
	tokenPath string

	mu    sync.Mutex
	token *oauth2.Token
}

// NewManager loads OAuth client credentials and the stored user token.
// credentialsPath must point at an OAuth Desktop App credentials file,
// tokenPath at the token.json produced by scripts/google-auth.
func NewManager(credentialsPath, tokenPath string) (*Manager, error) {
	creds, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read google credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(creds, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s (run scripts/google-auth first): %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	return &Manager{
		config:    config,
		tokenPath: tokenPath,
		token:     &tok,
	}, nil
}

// Token returns a valid access token, refreshing it silently if expired.
// An expired token with no refresh token, or a failed refresh, returns an
// error; callers surface that as tool output rather than propagating it.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token.Valid() {
		return m.token, nil
	}

	if m.token.RefreshToken == "" {
		return nil, fmt.Errorf("google token expired and no refresh token available")
	}

	refreshed, err := m.config.TokenSource(ctx, m.token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh google token: %w", err)
	}

	m.token = refreshed
	if err := m.saveToken(refreshed); err != nil {
		// The in-memory token is still good; losing the file copy only
		// costs a refresh on the next restart.
		return refreshed, nil
	}

	return refreshed, nil
}

// TokenSource adapts the manager to oauth2.TokenSource for the Google
// API service constructors.
func (m *Manager) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &ctxTokenSource{ctx: ctx, m: m}
}

func (m *Manager) saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(m.tokenPath, data, 0600)
}

type ctxTokenSource struct {
	ctx context.Context
	m   *Manager
}

func (s *ctxTokenSource) Token() (*oauth2.Token, error) {
	return s.m.Token(s.ctx)
}
