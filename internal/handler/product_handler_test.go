package handler

import (
	"net/http"
	"testing"

	"storefront/internal/model"
)

type productListResponse struct {
	Success bool            `json:"success"`
	Data    []model.Product `json:"data"`
}

type productResponse struct {
	Success bool          `json:"success"`
	Data    model.Product `json:"data"`
	Message string        `json:"message"`
}

func TestListProducts(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	c, rec := newContext(http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var resp productListResponse
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Error("expected success response")
	}
	if len(resp.Data) != 10 {
		t.Errorf("expected 10 products, got %d", len(resp.Data))
	}
}

func TestListProductsWithFilters(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	c, rec := newContext(http.MethodGet, "/api/products?category=Pizza", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var resp productListResponse
	decodeBody(t, rec, &resp)
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 pizzas, got %d", len(resp.Data))
	}
	for _, p := range resp.Data {
		if p.Category != "Pizza" {
			t.Errorf("unexpected category %q in filtered listing", p.Category)
		}
	}

	c, rec = newContext(http.MethodGet, "/api/products?search=brownie", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	decodeBody(t, rec, &resp)
	if len(resp.Data) != 1 || resp.Data[0].Name != "Chocolate Brownie" {
		t.Errorf("search filter returned %+v", resp.Data)
	}
}

func TestGetProduct(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{"existing product", "1", http.StatusOK},
		{"unknown id", "9999", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/api/products/"+tt.id, "")
			c.SetPath("/api/products/:id")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			if err := h.Get(c); err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}

func TestCreateProductValidation(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"description":"d","price":9.99,"category":"Drinks"}`},
		{"missing description", `{"name":"Cola","price":9.99,"category":"Drinks"}`},
		{"missing category", `{"name":"Cola","description":"d","price":9.99}`},
		{"missing price", `{"name":"Cola","description":"d","category":"Drinks"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/api/admin/products", tt.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	body := `{"name":"Iced Tea","description":"House brewed black tea","price":2.99,"category":"Drinks"}`
	c, rec := newContext(http.MethodPost, "/api/admin/products", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp productResponse
	decodeBody(t, rec, &resp)
	if resp.Data.ID == 0 {
		t.Error("expected assigned product id")
	}
	if resp.Data.PrepTime != 15 {
		t.Errorf("expected default prep_time 15, got %d", resp.Data.PrepTime)
	}
	if resp.Data.Stock != 0 {
		t.Errorf("expected default stock 0, got %d", resp.Data.Stock)
	}
	if !resp.Data.Available {
		t.Error("expected new product to be available")
	}
}

func TestUpdateProduct(t *testing.T) {
	h := NewProductHandler(newTestStore(t))

	body := `{"name":"Giant Pretzel","description":"Warm salted pretzel","price":6.49,"category":"Appetizers","stock":10,"prep_time":7}`
	c, rec := newContext(http.MethodPut, "/api/admin/products/4", body)
	c.SetPath("/api/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp productResponse
	decodeBody(t, rec, &resp)
	if resp.Data.Name != "Giant Pretzel" || resp.Data.Price != 6.49 {
		t.Errorf("update not applied: %+v", resp.Data)
	}

	c, rec = newContext(http.MethodPut, "/api/admin/products/9999", body)
	c.SetPath("/api/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("9999")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown id, got %d", rec.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	st := newTestStore(t)
	h := NewProductHandler(st)

	c, rec := newContext(http.MethodDelete, "/api/admin/products/2", "")
	c.SetPath("/api/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Soft-deleted product is gone from the listing but still readable by id
	c, rec = newContext(http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	var list productListResponse
	decodeBody(t, rec, &list)
	if len(list.Data) != 9 {
		t.Errorf("expected 9 products after delete, got %d", len(list.Data))
	}

	c, rec = newContext(http.MethodDelete, "/api/admin/products/9999", "")
	c.SetPath("/api/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("9999")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown id, got %d", rec.Code)
	}
}
