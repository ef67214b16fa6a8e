package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"eva-assistant/internal/admin"
	"eva-assistant/internal/model"
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

type mockUseCase struct {
	loginErr   error
	verifyErr  error
	scope      model.Scope
	contacts   []string
	history    []model.ChatMessage
	deleteErr  error
	createErr  error
	listErr    error
	gotDeleted string
}

func (m *mockUseCase) Login(ctx context.Context, input admin.LoginInput) (admin.LoginOutput, error) {
	if m.loginErr != nil {
		return admin.LoginOutput{}, m.loginErr
	}
	return admin.LoginOutput{Token: "signed-token", ExpiresIn: 3600, Role: model.AdminRoleSuper}, nil
}

func (m *mockUseCase) VerifyToken(tokenString string) (model.Scope, error) {
	if m.verifyErr != nil {
		return model.Scope{}, m.verifyErr
	}
	return m.scope, nil
}

func (m *mockUseCase) CreateUser(ctx context.Context, sc model.Scope, input admin.CreateUserInput) (model.AdminUser, error) {
	if m.createErr != nil {
		return model.AdminUser{}, m.createErr
	}
	return model.AdminUser{ID: 2, Username: input.Username, Role: model.AdminRoleStaff}, nil
}

func (m *mockUseCase) DeleteUser(ctx context.Context, sc model.Scope, username string) error {
	m.gotDeleted = username
	return m.deleteErr
}

func (m *mockUseCase) ListUsers(ctx context.Context, sc model.Scope) ([]model.AdminUser, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return []model.AdminUser{{ID: 1, Username: "boss", Role: model.AdminRoleSuper}}, nil
}

func (m *mockUseCase) ListContacts(ctx context.Context, sc model.Scope) ([]string, error) {
	return m.contacts, nil
}

func (m *mockUseCase) SessionHistory(ctx context.Context, sc model.Scope, sessionID string) ([]model.ChatMessage, error) {
	return m.history, nil
}

func newTestRouter(uc admin.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/admin"), New(mockLogger{}, uc))
	return router
}

func doRequest(router *gin.Engine, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials return token", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doRequest(router, http.MethodPost, "/admin/login", `{"username":"boss","password":"pw123456"}`, "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "signed-token") {
			t.Errorf("body missing token: %s", w.Body.String())
		}
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{loginErr: admin.ErrInvalidCredentials})

		w := doRequest(router, http.MethodPost, "/admin/login", `{"username":"boss","password":"nope1234"}`, "")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doRequest(router, http.MethodPost, "/admin/login", `{"username":"boss"}`, "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token rejected", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doRequest(router, http.MethodGet, "/admin/contacts", "", "")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{verifyErr: admin.ErrInvalidCredentials})

		w := doRequest(router, http.MethodGet, "/admin/contacts", "", "garbage")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token passes", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{
			scope:    model.Scope{Username: "boss", Role: model.AdminRoleSuper},
			contacts: []string{"923001234567"},
		})

		w := doRequest(router, http.MethodGet, "/admin/contacts", "", "good-token")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "923001234567") {
			t.Errorf("body missing contact: %s", w.Body.String())
		}
	})
}

func TestSessionHistoryHandler(t *testing.T) {
	router := newTestRouter(&mockUseCase{
		scope: model.Scope{Username: "boss", Role: model.AdminRoleSuper},
		history: []model.ChatMessage{
			{Role: model.RoleHuman, Text: "book me a slot"},
			{Role: model.RoleAI, Text: "Done!"},
		},
	})

	w := doRequest(router, http.MethodGet, "/admin/chats/923001234567", "", "good-token")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "book me a slot") || !strings.Contains(body, `"count":2`) {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestUserHandlers(t *testing.T) {
	t.Run("create forwards to usecase", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{scope: model.Scope{Username: "boss", Role: model.AdminRoleSuper}})

		w := doRequest(router, http.MethodPost, "/admin/users", `{"username":"clerk","password":"pw123456"}`, "good-token")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("list by staff returns 403", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{
			scope:   model.Scope{Username: "clerk", Role: model.AdminRoleStaff},
			listErr: admin.ErrForbidden,
		})

		w := doRequest(router, http.MethodGet, "/admin/users", "", "good-token")

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("create by staff returns 403", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{
			scope:     model.Scope{Username: "clerk", Role: model.AdminRoleStaff},
			createErr: admin.ErrForbidden,
		})

		w := doRequest(router, http.MethodPost, "/admin/users", `{"username":"x","password":"pw123456"}`, "good-token")

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{
			scope:     model.Scope{Username: "boss", Role: model.AdminRoleSuper},
			createErr: admin.ErrUserExists,
		})

		w := doRequest(router, http.MethodPost, "/admin/users", `{"username":"boss","password":"pw123456"}`, "good-token")

		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("self delete returns 403", func(t *testing.T) {
		uc := &mockUseCase{
			scope:     model.Scope{Username: "boss", Role: model.AdminRoleSuper},
			deleteErr: admin.ErrSelfDelete,
		}
		router := newTestRouter(uc)

		w := doRequest(router, http.MethodDelete, "/admin/users/boss", "", "good-token")

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if uc.gotDeleted != "boss" {
			t.Errorf("usecase got username %q", uc.gotDeleted)
		}
	})
}
