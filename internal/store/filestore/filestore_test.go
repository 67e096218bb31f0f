package filestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"storefront/internal/model"
	"storefront/internal/store"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := New(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestSeedingOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	products, err := s.ListAvailableProducts(context.Background(), store.ProductFilter{})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	if len(products) != 10 {
		t.Errorf("expected 10 seeded products, got %d", len(products))
	}

	orders, err := s.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("expected 2 seeded orders, got %d", len(orders))
	}

	// Reopening the same directory must not reseed or overwrite
	if err := s.SoftDeleteProduct(context.Background(), 1); err != nil {
		t.Fatalf("SoftDeleteProduct() error = %v", err)
	}
	s2, err := New(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	products2, err := s2.ListAvailableProducts(context.Background(), store.ProductFilter{})
	if err != nil {
		t.Fatalf("ListAvailableProducts() after reopen error = %v", err)
	}
	if len(products2) != 9 {
		t.Errorf("expected 9 products after reopen (soft delete kept), got %d", len(products2))
	}
}

func TestCreateProductDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, store.ProductInput{
		Name:        "Lemonade",
		Description: "Fresh squeezed lemonade with mint",
		Price:       3.99,
		Category:    "Drinks",
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	if created.ID != 11 {
		t.Errorf("expected id 11 (max seed id + 1), got %d", created.ID)
	}
	if created.Stock != 0 {
		t.Errorf("expected default stock 0, got %d", created.Stock)
	}
	if created.PrepTime != 15 {
		t.Errorf("expected default prep_time 15, got %d", created.PrepTime)
	}
	if created.Rating != 0 {
		t.Errorf("expected default rating 0, got %f", created.Rating)
	}
	if !created.Available {
		t.Error("expected new product to be available")
	}
	if created.Image != "" {
		t.Errorf("expected default empty image, got %q", created.Image)
	}

	got, err := s.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got.Name != created.Name || got.Price != created.Price || got.Category != created.Category {
		t.Errorf("GetProduct() = %+v, want fields of %+v", got, created)
	}
}

func TestUpdateProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := s.UpdateProduct(ctx, 1, store.ProductInput{
		Name:        "Double Beef Burger",
		Description: "Two juicy beef patties",
		Price:       15.99,
		Category:    "Burgers",
		Image:       before.Image,
		Stock:       45,
		PrepTime:    18,
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}

	if updated.Name != "Double Beef Burger" || updated.Price != 15.99 {
		t.Errorf("UpdateProduct() did not apply fields: %+v", updated)
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("expected updated_at to advance: before=%v after=%v", before.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at must not change: before=%v after=%v", before.CreatedAt, updated.CreatedAt)
	}
	if !updated.Available {
		t.Error("update must not change availability")
	}

	if _, err := s.UpdateProduct(ctx, 9999, store.ProductInput{Name: "x"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateProduct(unknown id) error = %v, want ErrNotFound", err)
	}
}

func TestSoftDeleteProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SoftDeleteProduct(ctx, 3); err != nil {
		t.Fatalf("SoftDeleteProduct() error = %v", err)
	}

	products, err := s.ListAvailableProducts(ctx, store.ProductFilter{})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	for _, p := range products {
		if p.ID == 3 {
			t.Error("soft-deleted product still listed")
		}
	}

	// The record persists and stays readable by id
	got, err := s.GetProduct(ctx, 3)
	if err != nil {
		t.Fatalf("GetProduct() after delete error = %v", err)
	}
	if got.Available {
		t.Error("expected available=false after soft delete")
	}

	// Deleting again is not an error; the id still exists
	if err := s.SoftDeleteProduct(ctx, 3); err != nil {
		t.Errorf("second SoftDeleteProduct() error = %v", err)
	}

	if err := s.SoftDeleteProduct(ctx, 9999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("SoftDeleteProduct(unknown id) error = %v, want ErrNotFound", err)
	}
}

func TestListAvailableProductsOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Two products distinguishable from the seed catalog via search
	if _, err := s.CreateProduct(ctx, store.ProductInput{
		Name: "X", Description: "ordering probe item", Price: 1, Category: "B",
	}); err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if _, err := s.CreateProduct(ctx, store.ProductInput{
		Name: "Y", Description: "ordering probe item", Price: 1, Category: "A",
	}); err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}

	got, err := s.ListAvailableProducts(ctx, store.ProductFilter{Search: "ordering probe"})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 probe products, got %d", len(got))
	}
	if got[0].Name != "Y" || got[1].Name != "X" {
		t.Errorf("expected category ascending order [Y X], got [%s %s]", got[0].Name, got[1].Name)
	}
}

func TestListAvailableProductsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pizza, err := s.ListAvailableProducts(ctx, store.ProductFilter{Category: "Pizza"})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	if len(pizza) != 2 {
		t.Errorf("expected 2 pizzas, got %d", len(pizza))
	}

	all, err := s.ListAvailableProducts(ctx, store.ProductFilter{Category: "All"})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	if len(all) != 10 {
		t.Errorf("category \"All\" must not filter, got %d products", len(all))
	}

	// Case-insensitive match against name or description
	burgers, err := s.ListAvailableProducts(ctx, store.ProductFilter{Search: "BEEF"})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}
	if len(burgers) == 0 {
		t.Error("expected case-insensitive search to match seeded burger")
	}
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	items := []model.OrderItem{
		{ProductID: 1, Name: "Burger", Price: 12.99, Quantity: 2},
	}
	order, err := s.CreateOrder(ctx, store.OrderInput{
		CustomerName: "Alice",
		Items:        items,
		Total:        25.98,
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if order.ID != 3 {
		t.Errorf("expected id 3 (after 2 seed orders), got %d", order.ID)
	}
	if order.Status != model.StatusPending {
		t.Errorf("expected status pending, got %s", order.Status)
	}
	if order.PaymentStatus != model.PaymentPaid {
		t.Errorf("expected payment_status paid, got %s", order.PaymentStatus)
	}
	if order.DeliveryTime != 30 {
		t.Errorf("expected default delivery_time 30, got %d", order.DeliveryTime)
	}
	if len(order.Items) != 1 || order.Items[0] != items[0] {
		t.Errorf("items snapshot not stored verbatim: %+v", order.Items)
	}

	// Newest order comes first
	orders, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if orders[0].ID != order.ID {
		t.Errorf("expected new order first, got id %d", orders[0].ID)
	}
}

func TestOrderSnapshotSurvivesProductChanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	order, err := s.CreateOrder(ctx, store.OrderInput{
		CustomerName: "Bob",
		Items:        []model.OrderItem{{ProductID: 1, Name: "Classic Beef Burger", Price: 12.99, Quantity: 1}},
		Total:        12.99,
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if _, err := s.UpdateProduct(ctx, 1, store.ProductInput{
		Name: "Renamed Burger", Description: "d", Price: 99.99, Category: "Burgers",
	}); err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if err := s.SoftDeleteProduct(ctx, 1); err != nil {
		t.Fatalf("SoftDeleteProduct() error = %v", err)
	}

	got, err := s.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}
	if got.Items[0].Name != "Classic Beef Burger" || got.Items[0].Price != 12.99 {
		t.Errorf("order snapshot mutated by product changes: %+v", got.Items[0])
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.GetOrder(ctx, 1)
	if err != nil {
		t.Fatalf("GetOrder() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := s.UpdateOrderStatus(ctx, 1, model.StatusReady)
	if err != nil {
		t.Fatalf("UpdateOrderStatus() error = %v", err)
	}
	if updated.Status != model.StatusReady {
		t.Errorf("expected status ready, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("expected updated_at to advance: before=%v after=%v", before.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Total != before.Total || len(updated.Items) != len(before.Items) {
		t.Error("status update must not touch items or total")
	}

	if _, err := s.UpdateOrderStatus(ctx, 9999, model.StatusReady); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateOrderStatus(unknown id) error = %v, want ErrNotFound", err)
	}
}

func TestListCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}

	// Ascending, distinct, derived from available products only
	want := []string{"Appetizers", "Asian", "BBQ", "Burgers", "Desserts", "Mexican", "Pizza", "Salads"}
	if len(categories) != len(want) {
		t.Fatalf("ListCategories() = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("ListCategories()[%d] = %q, want %q", i, categories[i], want[i])
		}
	}

	// Soft-deleting the only product of a category removes it from the view
	if err := s.SoftDeleteProduct(ctx, 6); err != nil { // Fish Tacos, sole Mexican item
		t.Fatalf("SoftDeleteProduct() error = %v", err)
	}
	categories, err = s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	for _, c := range categories {
		if c == "Mexican" {
			t.Error("category of soft-deleted product still listed")
		}
	}
}

func TestRoundTripPreservesRecords(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	original, err := s.ListAvailableProducts(ctx, store.ProductFilter{})
	if err != nil {
		t.Fatalf("ListAvailableProducts() error = %v", err)
	}

	reopened, err := New(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	restored, err := reopened.ListAvailableProducts(ctx, store.ProductFilter{})
	if err != nil {
		t.Fatalf("ListAvailableProducts() after reopen error = %v", err)
	}

	if len(restored) != len(original) {
		t.Fatalf("round trip changed record count: %d != %d", len(restored), len(original))
	}
	for i := range original {
		a, b := original[i], restored[i]
		if a.ID != b.ID || a.Name != b.Name || a.Price != b.Price || a.Category != b.Category ||
			a.Stock != b.Stock || a.PrepTime != b.PrepTime || a.Rating != b.Rating ||
			a.Available != b.Available || !a.CreatedAt.Equal(b.CreatedAt) || !a.UpdatedAt.Equal(b.UpdatedAt) {
			t.Errorf("record %d changed across round trip:\n  before %+v\n  after  %+v", i, a, b)
		}
	}
}
