package invoice

import "time"

// SchemaVersion tags every persisted snapshot so stored shapes are never
// trusted blindly; records with an unrecognized version are skipped on load.
const SchemaVersion = 1

// Layout templates supported by the document renderer. Template choice
// changes presentation only, never computed values.
const (
	LayoutPremium           = "premium"
	LayoutClassicMonochrome = "classic-mono"
)

// LineItem is owned exclusively by the draft that contains it and is mutated
// only by whole-item replacement.
type LineItem struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	TaxCode        string  `json:"taxCode"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	UnitRate       float64 `json:"unitRate" validate:"gte=0"`
	TaxRatePercent float64 `json:"taxRatePercent" validate:"gte=0,lte=100"`
}

// Party is a seller or buyer block as rendered on the document.
type Party struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// LateFeeSpec configures the overdue surcharge appended to the base total.
type LateFeeSpec struct {
	RatePercent float64 `json:"ratePercent" validate:"gte=0"`
	DaysLate    int     `json:"daysLate" validate:"gte=0"`
	Method      string  `json:"method" validate:"oneof=SI CI"`
}

// Draft is the live, editable working state of an invoice. It exists only in
// memory until explicitly saved, and never aliases a stored record.
type Draft struct {
	SchemaVersion        int          `json:"schemaVersion"`
	Seller               Party        `json:"seller"`
	BuyerName            string       `json:"buyerName" validate:"required"`
	BuyerTaxID           string       `json:"buyerTaxId"`
	BuyerBillingAddress  string       `json:"buyerBillingAddress"`
	BuyerShippingAddress string       `json:"buyerShippingAddress"`
	DocumentNumber       string       `json:"documentNumber"`
	IssueDate            time.Time    `json:"issueDate"`
	PaymentMode          string       `json:"paymentMode"`
	LateFee              *LateFeeSpec `json:"lateFee,omitempty"`
	Items                []LineItem   `json:"items" validate:"dive"`
}

// Clone deep-copies the draft so edits on the copy never reach the original.
func (d Draft) Clone() Draft {
	out := d
	if d.LateFee != nil {
		fee := *d.LateFee
		out.LateFee = &fee
	}
	out.Items = make([]LineItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// Totals are derived from items and never stored.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TaxTotal      float64 `json:"taxTotal"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	LateFeeAmount float64 `json:"lateFeeAmount"`
	GrandTotal    float64 `json:"grandTotal"`
}

// Record is an immutable snapshot of a saved invoice. The store owns it; the
// draft inside is a value copy taken at save time.
type Record struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	DocumentNumber string    `json:"documentNumber"`
	BuyerName      string    `json:"buyerName"`
	GrandTotal     float64   `json:"grandTotal"`
	LayoutTemplate string    `json:"layoutTemplate"`
	Snapshot       Draft     `json:"snapshot"`
}
