package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
	"github.com/taskmanager/task-api/internal/core/service"
)

// stubUsers implements only the lookup the gate needs; the embedded
// interface panics on anything else.
type stubUsers struct {
	ports.UserRepository
	users map[string]*domain.User
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func fixture(t *testing.T) (*service.TokenService, *stubUsers, *domain.User) {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Hour)
	alice := &domain.User{ID: "1", UserName: "alice", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser}
	return tokens, &stubUsers{users: map[string]*domain.User{"1": alice}}, alice
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, *domain.User, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var principal *domain.User
	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		principal = PrincipalFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, principal, called
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, users, alice := fixture(t)
	token, err := tokens.Issue(alice)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec, principal, called := invoke(t, Auth(tokens, users), "Bearer "+token)
	if !called {
		t.Fatalf("next not called, status %d", rec.Code)
	}
	if principal == nil || principal.ID != "1" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.PasswordHash != "" {
		t.Fatalf("principal view carries the password hash")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, users, _ := fixture(t)
	rec, _, called := invoke(t, Auth(tokens, users), "")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens, users, _ := fixture(t)
	rec, _, called := invoke(t, Auth(tokens, users), "Token abc")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens, users, _ := fixture(t)
	rec, _, called := invoke(t, Auth(tokens, users), "Bearer not-a-token")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	tokens, users, _ := fixture(t)
	// Token for an account that no longer exists.
	token, err := tokens.Issue(&domain.User{ID: "99", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec, _, called := invoke(t, Auth(tokens, users), "Bearer "+token)
	if called {
		t.Fatalf("next should not run for a deleted account")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	tokens, users, _ := fixture(t)
	rec, principal, called := invoke(t, OptionalAuth(tokens, users), "")
	if !called {
		t.Fatalf("next not called, status %d", rec.Code)
	}
	if principal != nil {
		t.Fatalf("expected anonymous principal, got %+v", principal)
	}
}

func TestOptionalAuth_TokenHonored(t *testing.T) {
	tokens, users, alice := fixture(t)
	token, _ := tokens.Issue(alice)

	_, principal, called := invoke(t, OptionalAuth(tokens, users), "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if principal == nil || principal.ID != "1" {
		t.Fatalf("expected resolved principal, got %+v", principal)
	}
}
