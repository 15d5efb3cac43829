package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, bcrypt.MinCost, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, token, err := svc.Register(context.Background(), "alice", "A@X.com ", "secret1", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "a@x.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_ThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	created, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), ports.IdentifierEmail, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.ID != created.ID {
		t.Fatalf("login resolved a different identity: %s vs %s", user.ID, created.ID)
	}

	// Username login works too.
	if _, _, err := svc.Login(context.Background(), ports.IdentifierUserName, "alice", "secret1"); err != nil {
		t.Fatalf("username login failed: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmailOrUserName(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Register(context.Background(), "alice", "other@x.com", "secret2", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	// Normalized email collides even with different casing.
	if _, _, err := svc.Register(context.Background(), "bob", "A@X.COM", "secret3", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "", "a@x.com", "secret1", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "x", "a@x.com", "secret1", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for short username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "a@x.com", "short", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1", "superuser"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestAuthService_Register_MultibyteUserName(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// One rune, three bytes: still under the two-character minimum.
	if _, _, err := svc.Register(context.Background(), "日", "a@x.com", "secret1", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for single-rune username, got %v", err)
	}

	// Thirty runes of CJK is well inside the 64-character maximum even
	// though it is 90 bytes.
	name := strings.Repeat("日", 30)
	if _, _, err := svc.Register(context.Background(), name, "cjk@x.com", "secret1", ""); err != nil {
		t.Fatalf("expected 30-rune username to register, got %v", err)
	}
}

func TestAuthService_DummyCompareUsesConfiguredCost(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)
	cost := bcrypt.MinCost + 2
	svc := NewAuthService(repo, tokens, cost, zerolog.Nop())

	// The hash burned on an unknown identifier must carry the same work
	// factor as real password hashes, or the two rejection paths become
	// distinguishable by timing.
	dummyCost, err := bcrypt.Cost(svc.dummyHash)
	if err != nil {
		t.Fatalf("dummy hash unreadable: %v", err)
	}
	if dummyCost != cost {
		t.Fatalf("dummy hash cost %d, want %d", dummyCost, cost)
	}

	user, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	realCost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil {
		t.Fatalf("stored hash unreadable: %v", err)
	}
	if realCost != dummyCost {
		t.Fatalf("stored hash cost %d differs from dummy cost %d", realCost, dummyCost)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, _ = svc.Register(context.Background(), "alice", "a@x.com", "secret1", "")

	if _, _, err := svc.Login(context.Background(), ports.IdentifierEmail, "a@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// An unknown identifier fails with the same error as a wrong password.
	if _, _, err := svc.Login(context.Background(), ports.IdentifierEmail, "ghost@x.com", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), ports.IdentifierUserName, "ghost", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
