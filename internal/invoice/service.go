package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no undeleted record matches the id.
	ErrNotFound = errors.New("invoice: record not found")
	// ErrEmptyDraft is returned when a draft without items is saved.
	ErrEmptyDraft = errors.New("invoice: draft has no items")
	// ErrDuplicateNumber is returned when the document number is already
	// used by a different undeleted record.
	ErrDuplicateNumber = errors.New("invoice: document number already in use")
)

// Repository abstracts the persisted record collection. Business logic never
// touches the backing store directly; production binds a gorm repository,
// tests bind one over an in-memory database.
type Repository interface {
	Insert(rec Record) error
	Update(rec Record) error
	ByID(id string) (Record, error)
	// List returns undeleted records newest first. Unreadable rows are
	// skipped, and their count reported so callers can warn once.
	List() ([]Record, int, error)
	Delete(id string) error
	// Numbers returns the document numbers of all undeleted records.
	Numbers() ([]string, error)
}

// Service owns the save/list/delete lifecycle of invoice records.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Save snapshots the draft. With an existingID it replaces that record's
// snapshot in place (same id, fresh CreatedAt, recomputed grand total);
// otherwise it inserts a new record. Document numbers must be unique among
// undeleted records; a record updating itself keeps its own number freely.
func (s *Service) Save(draft Draft, layout, existingID string) (Record, error) {
	if len(draft.Items) == 0 {
		return Record{}, ErrEmptyDraft
	}
	if layout != LayoutPremium && layout != LayoutClassicMonochrome {
		layout = LayoutPremium
	}
	snap := draft.Clone()
	snap.SchemaVersion = SchemaVersion

	existing := Record{}
	if existingID != "" {
		var err error
		existing, err = s.repo.ByID(existingID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return Record{}, fmt.Errorf("load existing record: %w", err)
		}
	}

	if err := s.checkNumber(snap.DocumentNumber, existing.ID); err != nil {
		return Record{}, err
	}

	totals := ComputeTotals(snap.Items, snap.LateFee)
	rec := Record{
		ID:             existing.ID,
		CreatedAt:      s.now(),
		DocumentNumber: snap.DocumentNumber,
		BuyerName:      snap.BuyerName,
		GrandTotal:     totals.GrandTotal,
		LayoutTemplate: layout,
		Snapshot:       snap,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		if err := s.repo.Insert(rec); err != nil {
			return Record{}, fmt.Errorf("insert record: %w", err)
		}
		return rec, nil
	}
	if err := s.repo.Update(rec); err != nil {
		return Record{}, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

func (s *Service) checkNumber(number, selfID string) error {
	if number == "" {
		return nil
	}
	numbers, err := s.repo.Numbers()
	if err != nil {
		return fmt.Errorf("list document numbers: %w", err)
	}
	holders := 0
	for _, n := range numbers {
		if n == number {
			holders++
		}
	}
	// The record being updated may keep its own number.
	allowed := 0
	if selfID != "" {
		if rec, err := s.repo.ByID(selfID); err == nil && rec.DocumentNumber == number {
			allowed = 1
		}
	}
	if holders > allowed {
		return ErrDuplicateNumber
	}
	return nil
}

// List returns stored records newest first, plus the number of rows that
// could not be decoded (corrupt JSON or unknown schema version).
func (s *Service) List() ([]Record, int, error) {
	return s.repo.List()
}

// Get loads one record by id.
func (s *Service) Get(id string) (Record, error) {
	return s.repo.ByID(id)
}

// Delete removes a record permanently. Nothing references records elsewhere,
// so deletion is always safe.
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// NextNumber suggests a document number by incrementing the most recently
// saved one. With no history it falls back to a year-stamped seed.
func (s *Service) NextNumber() (string, error) {
	recs, _, err := s.repo.List()
	if err != nil {
		return "", err
	}
	prev := ""
	if len(recs) > 0 {
		prev = recs[0].DocumentNumber
	}
	return NextDocumentNumber(prev), nil
}
