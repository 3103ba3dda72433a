package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protools/toolbox/internal/models"
)

// ErrNoProfile is returned while no business profile has been saved yet.
var ErrNoProfile = errors.New("store: business profile not configured")

// ProfileRepo manages the seller profile, the reusable inventory stubs and
// the buyer book. Three independent collections; deleting any of them never
// touches saved invoice snapshots.
type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Business returns the singleton seller profile.
func (r *ProfileRepo) Business() (models.BusinessProfile, error) {
	var p models.BusinessProfile
	if err := r.db.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BusinessProfile{}, ErrNoProfile
		}
		return models.BusinessProfile{}, err
	}
	return p, nil
}

// SaveBusiness upserts the singleton seller profile.
func (r *ProfileRepo) SaveBusiness(p models.BusinessProfile) (models.BusinessProfile, error) {
	existing, err := r.Business()
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = time.Now()
		if err := r.db.Save(&p).Error; err != nil {
			return models.BusinessProfile{}, err
		}
	case errors.Is(err, ErrNoProfile):
		p.ID = 0
		if err := r.db.Create(&p).Error; err != nil {
			return models.BusinessProfile{}, err
		}
	default:
		return models.BusinessProfile{}, err
	}
	return p, nil
}

func (r *ProfileRepo) Inventory() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Order("created_at asc").Find(&items).Error
	return items, err
}

func (r *ProfileRepo) AddInventoryItem(item models.InventoryItem) (models.InventoryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := r.db.Create(&item).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (r *ProfileRepo) DeleteInventoryItem(id string) error {
	res := r.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepo) Buyers() ([]models.BuyerProfile, error) {
	var buyers []models.BuyerProfile
	err := r.db.Order("name asc").Find(&buyers).Error
	return buyers, err
}

func (r *ProfileRepo) AddBuyer(b models.BuyerProfile) (models.BuyerProfile, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.Create(&b).Error; err != nil {
		return models.BuyerProfile{}, err
	}
	return b, nil
}

func (r *ProfileRepo) DeleteBuyer(id string) error {
	res := r.db.Delete(&models.BuyerProfile{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
