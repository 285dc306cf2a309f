package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/api/middleware"
	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

type stubUserService struct {
	isAdminFn func(ctx context.Context, email string) (bool, error)
	promoteFn func(ctx context.Context, requester, target string) (ports.UpdateOutcome, error)
	upsertFn  func(ctx context.Context, email string, fields domain.Document) (*ports.UpsertProfileResult, error)
	listFn    func(ctx context.Context) ([]domain.Document, error)
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdminFn(ctx, email)
}

func (s *stubUserService) Promote(ctx context.Context, requester, target string) (ports.UpdateOutcome, error) {
	return s.promoteFn(ctx, requester, target)
}

func (s *stubUserService) UpsertProfile(ctx context.Context, email string, fields domain.Document) (*ports.UpsertProfileResult, error) {
	return s.upsertFn(ctx, email, fields)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.Document, error) {
	return s.listFn(ctx)
}

func TestUserHandler_Upsert(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		upsertFn: func(_ context.Context, email string, fields domain.Document) (*ports.UpsertProfileResult, error) {
			if email != "u@x.com" {
				t.Fatalf("unexpected email %q", email)
			}
			if fields["name"] != "X" {
				t.Fatalf("unexpected fields %v", fields)
			}
			return &ports.UpsertProfileResult{
				Outcome: ports.UpdateOutcome{Matched: 1, Modified: 1},
				Token:   "token123",
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/user/u@x.com", strings.NewReader(`{"name":"X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("u@x.com")

	if err := h.Upsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in response, got %v", resp)
	}
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("expected result envelope, got %v", resp)
	}
}

func TestUserHandler_AdminStatus(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		isAdminFn: func(_ context.Context, email string) (bool, error) {
			return email == "a@x.com", nil
		},
	})

	for email, want := range map[string]bool{"a@x.com": true, "b@x.com": false} {
		req := httptest.NewRequest(http.MethodGet, "/admin/"+email, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("email")
		c.SetParamValues(email)

		if err := h.AdminStatus(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["admin"] != want {
			t.Fatalf("expected admin=%v for %s, got %v", want, email, resp)
		}
	}
}

func TestUserHandler_AdminStatus_UnknownIdentity(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		isAdminFn: func(context.Context, string) (bool, error) {
			return false, domain.ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/ghost@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("ghost@x.com")

	// The error propagates to the central handler, which renders a 404.
	if err := h.AdminStatus(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandler_Promote(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		promoteFn: func(_ context.Context, requester, target string) (ports.UpdateOutcome, error) {
			if requester != "a@x.com" || target != "b@x.com" {
				t.Fatalf("unexpected args: %s %s", requester, target)
			}
			return ports.UpdateOutcome{Matched: 1, Modified: 1}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/user/admin/b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	c.Set(middleware.ContextKeyEmail, "a@x.com")

	if err := h.Promote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Promote_NoClaims(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		promoteFn: func(context.Context, string, string) (ports.UpdateOutcome, error) {
			t.Fatalf("service must not be called without claims")
			return ports.UpdateOutcome{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/user/admin/b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")

	if err := h.Promote(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandler_Promote_UnknownRequester(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		promoteFn: func(context.Context, string, string) (ports.UpdateOutcome, error) {
			return ports.UpdateOutcome{}, domain.ErrForbidden
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/user/admin/b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("b@x.com")
	c.Set(middleware.ContextKeyEmail, "ghost@x.com")

	if err := h.Promote(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context) ([]domain.Document, error) {
			return []domain.Document{{"email": "a@x.com"}, {"email": "b@x.com"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, "a@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
}
