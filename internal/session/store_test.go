package session

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/curatebox/boxops/internal/domain/model"
)

func TestStoreReplacesCollections(t *testing.T) {
	store := NewStore()

	store.SetCustomers([]model.Customer{{ID: 1, Name: "Sarah Johnson"}})
	store.SetCustomers([]model.Customer{{ID: 2, Name: "Michael Chen"}})

	customers := store.Customers()
	if len(customers) != 1 {
		t.Fatalf("expected replace semantics, got %d customers", len(customers))
	}
	if customers[0].ID != 2 {
		t.Fatalf("expected latest snapshot, got customer %d", customers[0].ID)
	}
}

func TestStoreSnapshotsAreCopies(t *testing.T) {
	store := NewStore()
	store.SetProducts([]model.Product{{ID: 1, Name: "Artisan Coffee Beans"}})

	snapshot := store.Products()
	snapshot[0].Name = "mutated"

	if got := store.Products()[0].Name; got != "Artisan Coffee Beans" {
		t.Fatalf("store snapshot was mutated externally: %q", got)
	}
}

func TestToggleSelectionIsItsOwnInverse(t *testing.T) {
	store := NewStore()

	if !store.ToggleSelection(7) {
		t.Fatal("expected first toggle to select")
	}
	if store.ToggleSelection(7) {
		t.Fatal("expected second toggle to deselect")
	}
	if got := store.Selection(); len(got) != 0 {
		t.Fatalf("expected empty selection after double toggle, got %v", got)
	}
}

func TestSelectionIsSorted(t *testing.T) {
	store := NewStore()
	store.ToggleSelection(5)
	store.ToggleSelection(1)
	store.ToggleSelection(3)

	got := store.Selection()
	want := []int64{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectedProductsPreserveCatalogOrder(t *testing.T) {
	store := NewStore()
	store.SetProducts([]model.Product{
		{ID: 1, Name: "Artisan Coffee Beans", Cost: decimal.RequireFromString("12.50")},
		{ID: 2, Name: "Organic Dark Chocolate", Cost: decimal.RequireFromString("8.25")},
		{ID: 3, Name: "Handmade Ceramic Mug", Cost: decimal.RequireFromString("15.00")},
	})
	store.ToggleSelection(3)
	store.ToggleSelection(1)

	selected := store.SelectedProducts()
	if len(selected) != 2 {
		t.Fatalf("expected 2 selected products, got %d", len(selected))
	}
	if selected[0].ID != 1 || selected[1].ID != 3 {
		t.Fatalf("expected catalog order 1,3, got %d,%d", selected[0].ID, selected[1].ID)
	}
}

func TestResetDraftClearsDraftAndSelection(t *testing.T) {
	store := NewStore()
	store.SetDraft(model.Draft{Name: "December Holiday Box", Theme: "Holiday Comfort"})
	store.ToggleSelection(1)
	store.ToggleSelection(2)

	store.ResetDraft()

	if draft := store.Draft(); draft != (model.Draft{}) {
		t.Fatalf("expected empty draft, got %+v", draft)
	}
	if got := store.Selection(); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestBusyFlag(t *testing.T) {
	store := NewStore()
	if store.Busy() {
		t.Fatal("expected new store to be idle")
	}
	store.SetBusy(true)
	if !store.Busy() {
		t.Fatal("expected store to be busy")
	}
	store.SetBusy(false)
	if store.Busy() {
		t.Fatal("expected store to be idle again")
	}
}

func TestHasProduct(t *testing.T) {
	store := NewStore()
	store.SetProducts([]model.Product{{ID: 4, Name: "Premium Tea Blend"}})

	if !store.HasProduct(4) {
		t.Fatal("expected product 4 to be known")
	}
	if store.HasProduct(99) {
		t.Fatal("did not expect product 99 to be known")
	}
}
