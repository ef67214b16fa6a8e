package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type stubWebhookHandler struct{}

func (stubWebhookHandler) HandleVerify(c *gin.Context)  { c.String(http.StatusOK, "verified") }
func (stubWebhookHandler) HandleWebhook(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "received"}) }

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing logger", Config{Port: 8080, Mode: gin.TestMode, WebhookHandler: stubWebhookHandler{}}},
		{"missing port", Config{Logger: mockLogger{}, Mode: gin.TestMode, WebhookHandler: stubWebhookHandler{}}},
		{"missing mode", Config{Logger: mockLogger{}, Port: 8080, WebhookHandler: stubWebhookHandler{}}},
		{"missing webhook handler", Config{Logger: mockLogger{}, Port: 8080, Mode: gin.TestMode}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg.Logger, tt.cfg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := New(mockLogger{}, Config{
		Logger:         mockLogger{},
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "development",
		WebhookHandler: stubWebhookHandler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/health", http.StatusOK, "healthy"},
		{http.MethodGet, "/ready", http.StatusOK, "ready"},
		{http.MethodGet, "/live", http.StatusOK, "alive"},
		{http.MethodGet, "/webhook", http.StatusOK, "verified"},
		{http.MethodPost, "/webhook", http.StatusOK, "received"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want substring %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
