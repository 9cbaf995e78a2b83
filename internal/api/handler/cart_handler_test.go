package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
	"github.com/sbcommerce/storefront-system/internal/core/service"
)

type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (s *memStorage) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (s *memStorage) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memStorage) Clear(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type stubProductService struct {
	products map[string]*domain.Product
	listFn   func(input ports.ListProductsInput) (*ports.ListProductsResult, error)
}

func (s *stubProductService) CreateProduct(_ context.Context, _ ports.CreateProductInput) (*domain.Product, error) {
	return nil, nil
}

func (s *stubProductService) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *stubProductService) ListProducts(_ context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	if s.listFn != nil {
		return s.listFn(input)
	}
	return &ports.ListProductsResult{}, nil
}

func (s *stubProductService) UpdateProduct(_ context.Context, _ ports.UpdateProductInput) (*domain.Product, error) {
	return nil, nil
}

func (s *stubProductService) DeleteProduct(_ context.Context, _ string) error {
	return nil
}

func newTestCartHandler() *CartHandler {
	cart := service.NewCartManager(newMemStorage(), zerolog.Nop())
	catalog := &stubProductService{products: map[string]*domain.Product{
		"p1": {ID: "p1", Name: "Widget", Price: 9.5, Stock: 10},
	}}
	return NewCartHandler(cart, catalog)
}

func cartRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("X-Session-ID", "s1")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestCartHandler_AddResolvesSnapshotFromCatalog(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	c, rec := cartRequest(e, http.MethodPost, "/v1/cart/items", `{"product_id":"p1","quantity":2}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["count"] != float64(2) || resp["total"] != 19.0 {
		t.Fatalf("unexpected cart: %+v", resp)
	}
	lines := resp["lines"].([]any)
	line := lines[0].(map[string]any)
	if line["name"] != "Widget" {
		t.Fatalf("expected catalog name resolved, got %+v", line)
	}
}

func TestCartHandler_AddUnknownProductIsDropped(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	c, rec := cartRequest(e, http.MethodPost, "/v1/cart/items", `{"product_id":"ghost","quantity":1}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["count"] != float64(0) {
		t.Fatalf("expected empty cart for unknown product, got %+v", resp)
	}
}

func TestCartHandler_AddTrustsPostedSnapshot(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	c, rec := cartRequest(e, http.MethodPost, "/v1/cart/items", `{"product_id":"x1","name":"Custom","price":3.5,"quantity":2}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["total"] != 7.0 {
		t.Fatalf("expected posted snapshot honored, got %+v", resp)
	}
}

func TestCartHandler_MissingSessionHeader(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandler_QuantityLifecycle(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	c, _ := cartRequest(e, http.MethodPost, "/v1/cart/items", `{"product_id":"p1","quantity":1}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("add error: %v", err)
	}

	c, rec := cartRequest(e, http.MethodPost, "/v1/cart/items/p1/increment", "")
	c.SetParamNames("product_id")
	c.SetParamValues("p1")
	if err := handler.Increment(c); err != nil {
		t.Fatalf("increment error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %+v", resp)
	}

	c, rec = cartRequest(e, http.MethodPut, "/v1/cart/items/p1", `{"quantity":5}`)
	c.SetParamNames("product_id")
	c.SetParamValues("p1")
	if err := handler.SetQuantity(c); err != nil {
		t.Fatalf("set quantity error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["count"] != float64(5) {
		t.Fatalf("expected count 5, got %+v", resp)
	}

	c, rec = cartRequest(e, http.MethodDelete, "/v1/cart/items/p1", "")
	c.SetParamNames("product_id")
	c.SetParamValues("p1")
	if err := handler.Remove(c); err != nil {
		t.Fatalf("remove error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["count"] != float64(0) {
		t.Fatalf("expected empty cart, got %+v", resp)
	}
	if lines, ok := resp["lines"].([]any); !ok || len(lines) != 0 {
		t.Fatalf("lines must serialize as an empty array, got %+v", resp["lines"])
	}
}

func TestCartHandler_Clear(t *testing.T) {
	e := newTestEcho()
	handler := newTestCartHandler()

	c, _ := cartRequest(e, http.MethodPost, "/v1/cart/items", `{"product_id":"p1","quantity":3}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("add error: %v", err)
	}

	c, rec := cartRequest(e, http.MethodDelete, "/v1/cart", "")
	if err := handler.Clear(c); err != nil {
		t.Fatalf("clear error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, rec = cartRequest(e, http.MethodGet, "/v1/cart", "")
	if err := handler.Get(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["count"] != float64(0) {
		t.Fatalf("expected empty cart after clear, got %+v", resp)
	}
}
