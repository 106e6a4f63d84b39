package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Bhargavikambam/GreenBag/internal/domain"
)

func TestCartView(t *testing.T) {
	cartSvc := &stubCartService{view: &domain.CartView{
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: "a", PriceCents: 1000}, Quantity: 2, SubtotalCents: 2000},
			{Product: domain.Product{ID: "b", PriceCents: 500}, Quantity: 1, SubtotalCents: 500},
		},
		TotalCents: 2500,
	}}
	deps := defaultDeps()
	deps.CartSvc = cartSvc
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodGet, "/cart", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var view domain.CartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.TotalCents != 2500 || len(view.Lines) != 2 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestCartAddDefaultsQuantity(t *testing.T) {
	cartSvc := &stubCartService{cart: domain.Cart{"p1": 1}}
	deps := defaultDeps()
	deps.CartSvc = cartSvc
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodPost, "/cart/items", `{"productId":"p1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastProduct != "p1" || cartSvc.lastQty != 1 {
		t.Fatalf("unexpected add call product=%q qty=%d", cartSvc.lastProduct, cartSvc.lastQty)
	}
}

func TestCartAddRequiresProductID(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := doRequest(t, router, http.MethodPost, "/cart/items", `{"quantity":2}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	deps := defaultDeps()
	deps.CartSvc = &stubCartService{err: domain.ErrNotFound}
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodPost, "/cart/items", `{"productId":"ghost"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCartAdjust(t *testing.T) {
	cartSvc := &stubCartService{cart: domain.Cart{}}
	deps := defaultDeps()
	deps.CartSvc = cartSvc
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodPost, "/cart/items/p1", `{"action":"decrement"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cartSvc.lastProduct != "p1" || cartSvc.lastAction != "decrement" {
		t.Fatalf("unexpected adjust call product=%q action=%q", cartSvc.lastProduct, cartSvc.lastAction)
	}
}

func TestCartAdjustRequiresAction(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := doRequest(t, router, http.MethodPost, "/cart/items/p1", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartRemove(t *testing.T) {
	cartSvc := &stubCartService{cart: domain.Cart{}}
	deps := defaultDeps()
	deps.CartSvc = cartSvc
	router := newTestRouter(t, deps)

	rec := doRequest(t, router, http.MethodDelete, "/cart/items/p1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cartSvc.lastProduct != "p1" {
		t.Fatalf("unexpected remove call product=%q", cartSvc.lastProduct)
	}
}
