package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/protools/toolbox/internal/httpx"
	"github.com/protools/toolbox/internal/models"
	"github.com/protools/toolbox/internal/store"
)

// ProfileHandler serves the seller profile, the inventory stubs and the buyer
// book backing the invoice editor's pickers.
type ProfileHandler struct {
	repo *store.ProfileRepo
}

func NewProfileHandler(repo *store.ProfileRepo) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

// Business handles GET /profile/business.
func (h *ProfileHandler) Business(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.Business()
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			httpx.JSONError(w, http.StatusNotFound, "profile_not_configured", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// SaveBusiness handles PUT /profile/business.
func (h *ProfileHandler) SaveBusiness(w http.ResponseWriter, r *http.Request) {
	var p models.BusinessProfile
	if err := httpx.Decode(r, &p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if p.Name == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "name_required", nil)
		return
	}
	saved, err := h.repo.SaveBusiness(p)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// Inventory handles GET /profile/inventory.
func (h *ProfileHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.Inventory()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	httpx.JSON(w, http.StatusOK, items)
}

// AddInventory handles POST /profile/inventory.
func (h *ProfileHandler) AddInventory(w http.ResponseWriter, r *http.Request) {
	var item models.InventoryItem
	if err := httpx.Decode(r, &item); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if item.Name == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "name_required", nil)
		return
	}
	saved, err := h.repo.AddInventoryItem(item)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

// DeleteInventory handles POST /profile/inventory/delete?id=.
func (h *ProfileHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.repo.DeleteInventoryItem)
}

// Buyers handles GET /profile/buyers.
func (h *ProfileHandler) Buyers(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.repo.Buyers()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	if buyers == nil {
		buyers = []models.BuyerProfile{}
	}
	httpx.JSON(w, http.StatusOK, buyers)
}

// AddBuyer handles POST /profile/buyers.
func (h *ProfileHandler) AddBuyer(w http.ResponseWriter, r *http.Request) {
	var b models.BuyerProfile
	if err := httpx.Decode(r, &b); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if b.Name == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "name_required", nil)
		return
	}
	saved, err := h.repo.AddBuyer(b)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

// DeleteBuyer handles POST /profile/buyers/delete?id=.
func (h *ProfileHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.repo.DeleteBuyer)
}

func (h *ProfileHandler) deleteByID(w http.ResponseWriter, r *http.Request, del func(string) error) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := del(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
