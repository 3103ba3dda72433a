package handlers

import (
	"net/http"
	"testing"

	"github.com/protools/toolbox/internal/models"
	"github.com/protools/toolbox/internal/store"
)

func newProfileHandler(t *testing.T) *ProfileHandler {
	t.Helper()
	return NewProfileHandler(store.NewProfileRepo(setupTestDB(t)))
}

func TestBusinessProfileLifecycle(t *testing.T) {
	h := newProfileHandler(t)

	rr := get(t, h.Business, "/profile/business")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unconfigured profile status = %d, want 404", rr.Code)
	}

	rr = postJSON(t, h.SaveBusiness, "/profile/business", models.BusinessProfile{
		Name: "PROTOOLS VENTURES", TaxID: "22AAAAA0000A1Z5", Address: "14 Industrial Estate, Pune",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", rr.Code, rr.Body.String())
	}

	// Saving again replaces the singleton instead of adding a second row.
	rr = postJSON(t, h.SaveBusiness, "/profile/business", models.BusinessProfile{Name: "PROTOOLS VENTURES LLP"})
	if rr.Code != http.StatusOK {
		t.Fatalf("resave status = %d", rr.Code)
	}

	rr = get(t, h.Business, "/profile/business")
	var p models.BusinessProfile
	decodeBody(t, rr, &p)
	if p.Name != "PROTOOLS VENTURES LLP" {
		t.Fatalf("name = %q, want updated name", p.Name)
	}
}

func TestBusinessProfileRequiresName(t *testing.T) {
	h := newProfileHandler(t)
	rr := postJSON(t, h.SaveBusiness, "/profile/business", models.BusinessProfile{TaxID: "X"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
}

func TestInventoryCRUD(t *testing.T) {
	h := newProfileHandler(t)

	rr := postJSON(t, h.AddInventory, "/profile/inventory", models.InventoryItem{Name: "Consulting", TaxCode: "9983"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add status = %d", rr.Code)
	}
	var item models.InventoryItem
	decodeBody(t, rr, &item)
	if item.ID == "" {
		t.Fatal("item was not assigned an id")
	}

	lr := get(t, h.Inventory, "/profile/inventory")
	var items []models.InventoryItem
	decodeBody(t, lr, &items)
	if len(items) != 1 {
		t.Fatalf("list has %d items, want 1", len(items))
	}

	dr := postJSON(t, h.DeleteInventory, "/profile/inventory/delete?id="+item.ID, nil)
	if dr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", dr.Code)
	}
	dr = postJSON(t, h.DeleteInventory, "/profile/inventory/delete?id="+item.ID, nil)
	if dr.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", dr.Code)
	}
}

func TestBuyersCRUD(t *testing.T) {
	h := newProfileHandler(t)

	rr := postJSON(t, h.AddBuyer, "/profile/buyers", models.BuyerProfile{
		Name: "RETAIL CLIENT LTD", BillingAddress: "5 Market Road, Mumbai",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add status = %d", rr.Code)
	}
	var b models.BuyerProfile
	decodeBody(t, rr, &b)

	lr := get(t, h.Buyers, "/profile/buyers")
	var buyers []models.BuyerProfile
	decodeBody(t, lr, &buyers)
	if len(buyers) != 1 || buyers[0].ID != b.ID {
		t.Fatalf("buyers = %+v", buyers)
	}

	dr := postJSON(t, h.DeleteBuyer, "/profile/buyers/delete?id="+b.ID, nil)
	if dr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", dr.Code)
	}
}

func TestEmptyListsAreJSONArrays(t *testing.T) {
	h := newProfileHandler(t)
	rr := get(t, h.Inventory, "/profile/inventory")
	if got := rr.Body.String(); got != "[]" {
		t.Fatalf("empty inventory = %q, want a JSON array", got)
	}
}
