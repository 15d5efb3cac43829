package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/core/domain"
)

type stubUserService struct {
	listFn          func(ctx context.Context) ([]domain.User, error)
	getByUserNameFn func(ctx context.Context, userName string) (*domain.User, error)
	createFn        func(ctx context.Context, userName, email, password string) (*domain.User, error)
	deleteFn        func(ctx context.Context, userName string) error
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return s.getByUserNameFn(ctx, userName)
}

func (s *stubUserService) Create(ctx context.Context, userName, email, password string) (*domain.User, error) {
	return s.createFn(ctx, userName, email, password)
}

func (s *stubUserService) Delete(ctx context.Context, userName string) error {
	return s.deleteFn(ctx, userName)
}

func TestUserHandler_GetByName(t *testing.T) {
	stub := &stubUserService{
		getByUserNameFn: func(_ context.Context, userName string) (*domain.User, error) {
			if userName != "alice" {
				t.Fatalf("unexpected username %q", userName)
			}
			return &domain.User{ID: "u1", UserName: "alice", Email: "a@x.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userName")
	c.SetParamValues("alice")

	if err := handler.GetByName(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["user_name"] != "alice" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if _, leaked := data["password"]; leaked {
		t.Fatalf("password leaked into response")
	}
}

func TestUserHandler_GetByName_NotFound(t *testing.T) {
	stub := &stubUserService{
		getByUserNameFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userName")
	c.SetParamValues("ghost")

	if !errors.Is(handler.GetByName(c), domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate")
	}
}

func TestUserHandler_Create_NoTokenIssued(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, userName, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", UserName: userName, Email: email}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := postJSON(t, "/users", `{"user_name":"alice","email":"a@x.com","password":"pw"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "created" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if _, hasToken := resp["token"]; hasToken {
		t.Fatalf("legacy endpoint must not issue a token: %+v", resp)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubUserService{
		deleteFn: func(_ context.Context, userName string) error {
			deleted = userName
			return nil
		},
	}
	handler := NewUserHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/users/alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userName")
	c.SetParamValues("alice")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "alice" {
		t.Fatalf("delete not forwarded, got %q", deleted)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
