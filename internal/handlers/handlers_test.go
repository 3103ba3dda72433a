package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/protools/toolbox/internal/invoice"
	"github.com/protools/toolbox/internal/models"
	"github.com/protools/toolbox/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.InvoiceRecord{}, &models.BusinessProfile{}, &models.InventoryItem{}, &models.BuyerProfile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newInvoiceHandler(t *testing.T) *InvoiceHandler {
	t.Helper()
	return NewInvoiceHandler(invoice.NewService(store.NewRecordRepo(setupTestDB(t))))
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func sampleDraft(number string) invoice.Draft {
	return invoice.Draft{
		Seller: invoice.Party{
			Name:    "PROTOOLS VENTURES",
			TaxID:   "22AAAAA0000A1Z5",
			Address: "14 Industrial Estate, Pune",
		},
		BuyerName:           "RETAIL CLIENT LTD",
		BuyerBillingAddress: "5 Market Road, Mumbai",
		DocumentNumber:      number,
		PaymentMode:         "NEFT",
		Items: []invoice.LineItem{
			{ID: "it-1", Description: "Consulting", TaxCode: "9983", Quantity: 1, UnitRate: 25000, TaxRatePercent: 18},
		},
	}
}
