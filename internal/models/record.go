package models

import "time"

// InvoiceRecord is the persisted form of a saved invoice. The full draft is
// kept as a versioned JSON snapshot; the flat columns exist for listing and
// lookups without decoding every snapshot.
type InvoiceRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	DocumentNumber string `gorm:"index"`
	BuyerName      string
	GrandTotal     float64
	LayoutTemplate string `gorm:"not null;default:'premium'"`
	SchemaVersion  int    `gorm:"not null"`
	SnapshotJSON   string `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// BusinessProfile is the singleton seller profile that seeds every new
// draft's seller block. Saved invoices embed their own copy, so editing the
// profile never touches existing snapshots.
type BusinessProfile struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	TaxID     string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryItem is a reusable line-item stub used to autofill descriptions
// and tax codes while editing.
type InventoryItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"not null"`
	TaxCode   string
	CreatedAt time.Time
}

// BuyerProfile is a reusable buyer block. Independent of saved records; no
// foreign keys anywhere between the four collections.
type BuyerProfile struct {
	ID              string `gorm:"primaryKey;size:36"`
	Name            string `gorm:"not null;index"`
	TaxID           string
	BillingAddress  string
	ShippingAddress string
	Phone           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
