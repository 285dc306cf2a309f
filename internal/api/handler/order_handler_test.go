package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/partsline/manufacturer-api/internal/api/middleware"
	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

type stubOrderService struct {
	submitFn func(ctx context.Context, in ports.SubmitOrderInput) (*ports.SubmitOrderResult, error)
	listFn   func(ctx context.Context, email string) ([]domain.Document, error)
	deleteFn func(ctx context.Context, id string) (int64, error)
}

func (s *stubOrderService) Submit(ctx context.Context, in ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
	return s.submitFn(ctx, in)
}

func (s *stubOrderService) ListForRequester(ctx context.Context, email string) ([]domain.Document, error) {
	return s.listFn(ctx, email)
}

func (s *stubOrderService) Delete(ctx context.Context, id string) (int64, error) {
	return s.deleteFn(ctx, id)
}

func newOrderEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// memoryIntake reproduces the intake decision in memory so the handler can be
// driven through the full accepted-then-duplicate scenario.
func memoryIntake() *stubOrderService {
	records := make(map[string]domain.Document)
	return &stubOrderService{
		submitFn: func(_ context.Context, in ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
			key := in.PartsName + "|" + in.Email
			if existing, ok := records[key]; ok {
				return &ports.SubmitOrderResult{Accepted: false, Record: existing}, nil
			}
			in.Fields["_id"] = "id-" + key
			records[key] = in.Fields
			return &ports.SubmitOrderResult{Accepted: true, Record: in.Fields}, nil
		},
	}
}

func postOrder(t *testing.T, e *echo.Echo, h *OrderHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var resp map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
	}
	return rec, resp
}

func TestOrderHandler_Submit_AcceptedThenDuplicate(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(memoryIntake())
	body := `{"partsName":"gear","email":"c@x.com","quantity":5}`

	rec, resp := postOrder(t, e, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true on first submission, got %v", resp)
	}
	result, ok := resp["result"].(map[string]any)
	if !ok || result["partsName"] != "gear" {
		t.Fatalf("expected inserted record in result, got %v", resp)
	}

	rec, resp = postOrder(t, e, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false on duplicate, got %v", resp)
	}
	order, ok := resp["order"].(map[string]any)
	if !ok || order["_id"] != "id-gear|c@x.com" {
		t.Fatalf("expected the original record under order, got %v", resp)
	}
}

func TestOrderHandler_Submit_MissingFields(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{
		submitFn: func(context.Context, ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
			t.Fatalf("service must not be called for an invalid body")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{"email":"c@x.com"}`,
		`{"partsName":"gear"}`,
		`{"partsName":"gear","email":"not-an-email"}`,
	} {
		rec, _ := postOrder(t, e, h, body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %d", body, rec.Code)
		}
	}
}

func TestOrderHandler_Submit_InvalidPayload(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{})

	rec, _ := postOrder(t, e, h, "not-json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_List_MissingEmailForbidden(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{
		listFn: func(context.Context, string) ([]domain.Document, error) {
			t.Fatalf("service must not be called without an email param")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, "c@x.com")

	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestOrderHandler_List_NoClaims(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/order?email=c@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// The email param is not checked against the authenticated identity; a
// mismatch still succeeds. Known gap in the published behavior.
func TestOrderHandler_List_EmailMismatchStillServed(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{
		listFn: func(_ context.Context, email string) ([]domain.Document, error) {
			if email != "other@x.com" {
				t.Fatalf("expected query email to be used, got %q", email)
			}
			return []domain.Document{{"partsName": "gear"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/order?email=other@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, "c@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	e := newOrderEcho()
	h := NewOrderHandler(&stubOrderService{
		deleteFn: func(_ context.Context, id string) (int64, error) {
			if id != "abc123" {
				t.Fatalf("unexpected id %q", id)
			}
			return 1, nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/order/abc123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["acknowledged"] != true || resp["deletedCount"] != float64(1) {
		t.Fatalf("unexpected delete envelope: %v", resp)
	}
}
