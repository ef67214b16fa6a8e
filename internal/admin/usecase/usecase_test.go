package usecase

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eva-assistant/internal/admin"
	"eva-assistant/internal/admin/repository"
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

type mockUserRepo struct {
	users map[string]model.AdminUser
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.AdminUser)}
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	u, ok := m.users[username]
	if !ok {
		return model.AdminUser{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user model.AdminUser) (model.AdminUser, error) {
	user.ID = int64(len(m.users) + 1)
	m.users[user.Username] = user
	return user, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, username string) error {
	if _, ok := m.users[username]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, username)
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.AdminUser, error) {
	var out []model.AdminUser
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type mockConvoRepo struct {
	sessions map[string][]model.ChatMessage
}

func (m *mockConvoRepo) Append(ctx context.Context, sessionID string, raw []byte) error { return nil }

func (m *mockConvoRepo) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	return m.sessions[sessionID], nil
}

func (m *mockConvoRepo) ListSessions(ctx context.Context) ([]string, error) {
	var ids []string
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo.users[username] = model.AdminUser{
		ID:           int64(len(repo.users) + 1),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "admin", "correct-horse", model.AdminRoleSuper)
	uc := New(mockLogger{}, repo, &mockConvoRepo{}, "test-secret", time.Hour)

	t.Run("valid credentials", func(t *testing.T) {
		out, err := uc.Login(context.Background(), admin.LoginInput{Username: "admin", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if out.Token == "" {
			t.Fatal("expected a token")
		}
		if out.Role != model.AdminRoleSuper {
			t.Errorf("role = %q", out.Role)
		}
		if out.ExpiresIn != 3600 {
			t.Errorf("expires_in = %d, want 3600", out.ExpiresIn)
		}

		sc, err := uc.VerifyToken(out.Token)
		if err != nil {
			t.Fatalf("VerifyToken: %v", err)
		}
		if sc.Username != "admin" || sc.Role != model.AdminRoleSuper {
			t.Errorf("unexpected scope: %+v", sc)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), admin.LoginInput{Username: "admin", Password: "wrong"})
		if err != admin.ErrInvalidCredentials {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Login(context.Background(), admin.LoginInput{Username: "ghost", Password: "whatever"})
		if err != admin.ErrInvalidCredentials {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestVerifyToken_Garbage(t *testing.T) {
	uc := New(mockLogger{}, newMockUserRepo(), &mockConvoRepo{}, "test-secret", time.Hour)

	if _, err := uc.VerifyToken("not-a-jwt"); err == nil {
		t.Error("garbage token must not verify")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "admin", "pw", model.AdminRoleSuper)
	issuer := New(mockLogger{}, repo, &mockConvoRepo{}, "secret-a", time.Hour)
	verifier := New(mockLogger{}, repo, &mockConvoRepo{}, "secret-b", time.Hour)

	out, err := issuer.Login(context.Background(), admin.LoginInput{Username: "admin", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := verifier.VerifyToken(out.Token); err == nil {
		t.Error("token signed with another secret must not verify")
	}
}

func TestCreateUser(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "boss", "pw", model.AdminRoleSuper)
	uc := New(mockLogger{}, repo, &mockConvoRepo{}, "test-secret", time.Hour)

	superScope := model.Scope{UserID: "boss", Username: "boss", Role: model.AdminRoleSuper}
	staffScope := model.Scope{UserID: "clerk", Username: "clerk", Role: model.AdminRoleStaff}

	t.Run("super admin creates staff", func(t *testing.T) {
		user, err := uc.CreateUser(context.Background(), superScope, admin.CreateUserInput{
			Username: "clerk",
			Password: "long-enough-pass",
		})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if user.Role != model.AdminRoleStaff {
			t.Errorf("default role = %q, want staff", user.Role)
		}
		if user.PasswordHash == "long-enough-pass" {
			t.Error("password stored unhashed")
		}
	})

	t.Run("staff cannot create users", func(t *testing.T) {
		_, err := uc.CreateUser(context.Background(), staffScope, admin.CreateUserInput{
			Username: "other", Password: "long-enough-pass",
		})
		if err != admin.ErrForbidden {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := uc.CreateUser(context.Background(), superScope, admin.CreateUserInput{
			Username: "boss", Password: "long-enough-pass",
		})
		if err != admin.ErrUserExists {
			t.Errorf("err = %v, want ErrUserExists", err)
		}
	})

	t.Run("bad role rejected", func(t *testing.T) {
		_, err := uc.CreateUser(context.Background(), superScope, admin.CreateUserInput{
			Username: "x", Password: "long-enough-pass", Role: "root",
		})
		if err != admin.ErrInvalidRole {
			t.Errorf("err = %v, want ErrInvalidRole", err)
		}
	})
}

func TestListUsers(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "boss", "pw", model.AdminRoleSuper)
	seedUser(t, repo, "clerk", "pw", model.AdminRoleStaff)
	uc := New(mockLogger{}, repo, &mockConvoRepo{}, "test-secret", time.Hour)

	t.Run("super admin sees all accounts", func(t *testing.T) {
		sc := model.Scope{UserID: "boss", Username: "boss", Role: model.AdminRoleSuper}
		users, err := uc.ListUsers(context.Background(), sc)
		if err != nil {
			t.Fatalf("ListUsers: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("expected 2 users, got %d", len(users))
		}
	})

	t.Run("staff cannot list users", func(t *testing.T) {
		sc := model.Scope{UserID: "clerk", Username: "clerk", Role: model.AdminRoleStaff}
		users, err := uc.ListUsers(context.Background(), sc)
		if err != admin.ErrForbidden {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
		if users != nil {
			t.Errorf("expected no users for staff, got %v", users)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "boss", "pw", model.AdminRoleSuper)
	seedUser(t, repo, "clerk", "pw", model.AdminRoleStaff)
	uc := New(mockLogger{}, repo, &mockConvoRepo{}, "test-secret", time.Hour)

	superScope := model.Scope{UserID: "boss", Username: "boss", Role: model.AdminRoleSuper}

	if err := uc.DeleteUser(context.Background(), superScope, "boss"); err != admin.ErrSelfDelete {
		t.Errorf("self delete: err = %v, want ErrSelfDelete", err)
	}
	if err := uc.DeleteUser(context.Background(), superScope, "ghost"); err != admin.ErrUserNotFound {
		t.Errorf("missing user: err = %v, want ErrUserNotFound", err)
	}
	if err := uc.DeleteUser(context.Background(), superScope, "clerk"); err != nil {
		t.Errorf("delete clerk: %v", err)
	}
	if _, ok := repo.users["clerk"]; ok {
		t.Error("clerk still present after delete")
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo := newMockUserRepo()
	uc := New(mockLogger{}, repo, &mockConvoRepo{}, "test-secret", time.Hour)

	if err := uc.EnsureAdmin(context.Background(), "admin", "bootstrap-pass"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	seeded, ok := repo.users["admin"]
	if !ok {
		t.Fatal("admin not seeded")
	}
	if seeded.Role != model.AdminRoleSuper {
		t.Errorf("seeded role = %q, want super", seeded.Role)
	}

	// Second run is a no-op, the hash must not change.
	if err := uc.EnsureAdmin(context.Background(), "admin", "different-pass"); err != nil {
		t.Fatalf("EnsureAdmin (second): %v", err)
	}
	if repo.users["admin"].PasswordHash != seeded.PasswordHash {
		t.Error("EnsureAdmin overwrote an existing account")
	}

	// Missing credentials skip seeding without error.
	if err := uc.EnsureAdmin(context.Background(), "", ""); err != nil {
		t.Errorf("EnsureAdmin with empty credentials: %v", err)
	}
}

func TestChats(t *testing.T) {
	convo := &mockConvoRepo{sessions: map[string][]model.ChatMessage{
		"923001234567": {
			{Role: model.RoleHuman, Text: "hello"},
			{Role: model.RoleAI, Text: "Hi, I am Eva."},
		},
	}}
	uc := New(mockLogger{}, newMockUserRepo(), convo, "test-secret", time.Hour)
	sc := model.Scope{Username: "boss", Role: model.AdminRoleSuper}

	contacts, err := uc.ListContacts(context.Background(), sc)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0] != "923001234567" {
		t.Errorf("contacts = %v", contacts)
	}

	history, err := uc.SessionHistory(context.Background(), sc, "923001234567")
	if err != nil {
		t.Fatalf("SessionHistory: %v", err)
	}
	if len(history) != 2 || history[1].Text != "Hi, I am Eva." {
		t.Errorf("history = %+v", history)
	}
}
