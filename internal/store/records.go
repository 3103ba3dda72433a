package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/protools/toolbox/internal/invoice"
	"github.com/protools/toolbox/internal/models"
)

// RecordRepo is the gorm binding of invoice.Repository.
type RecordRepo struct {
	db       *gorm.DB
	warnOnce sync.Once
}

func NewRecordRepo(db *gorm.DB) *RecordRepo { return &RecordRepo{db: db} }

var _ invoice.Repository = (*RecordRepo)(nil)

func toRow(rec invoice.Record) (models.InvoiceRecord, error) {
	snap, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return models.InvoiceRecord{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return models.InvoiceRecord{
		ID:             rec.ID,
		DocumentNumber: rec.DocumentNumber,
		BuyerName:      rec.BuyerName,
		GrandTotal:     rec.GrandTotal,
		LayoutTemplate: rec.LayoutTemplate,
		SchemaVersion:  rec.Snapshot.SchemaVersion,
		SnapshotJSON:   string(snap),
		CreatedAt:      rec.CreatedAt,
	}, nil
}

func fromRow(row models.InvoiceRecord) (invoice.Record, error) {
	if row.SchemaVersion != invoice.SchemaVersion {
		return invoice.Record{}, fmt.Errorf("unrecognized snapshot schema version %d", row.SchemaVersion)
	}
	var snap invoice.Draft
	if err := json.Unmarshal([]byte(row.SnapshotJSON), &snap); err != nil {
		return invoice.Record{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return invoice.Record{
		ID:             row.ID,
		CreatedAt:      row.CreatedAt,
		DocumentNumber: row.DocumentNumber,
		BuyerName:      row.BuyerName,
		GrandTotal:     row.GrandTotal,
		LayoutTemplate: row.LayoutTemplate,
		Snapshot:       snap,
	}, nil
}

func (r *RecordRepo) Insert(rec invoice.Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	return r.db.Create(&row).Error
}

func (r *RecordRepo) Update(rec invoice.Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	res := r.db.Model(&models.InvoiceRecord{}).Where("id = ?", row.ID).Updates(map[string]any{
		"document_number": row.DocumentNumber,
		"buyer_name":      row.BuyerName,
		"grand_total":     row.GrandTotal,
		"layout_template": row.LayoutTemplate,
		"schema_version":  row.SchemaVersion,
		"snapshot_json":   row.SnapshotJSON,
		"created_at":      row.CreatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return invoice.ErrNotFound
	}
	return nil
}

func (r *RecordRepo) ByID(id string) (invoice.Record, error) {
	var row models.InvoiceRecord
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invoice.Record{}, invoice.ErrNotFound
		}
		return invoice.Record{}, err
	}
	return fromRow(row)
}

// List returns decodable records newest first. Corrupt rows are skipped, not
// fatal: the collection keeps working and the caller gets a skip count to
// surface a warning.
func (r *RecordRepo) List() ([]invoice.Record, int, error) {
	var rows []models.InvoiceRecord
	if err := r.db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]invoice.Record, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			skipped++
			r.warnOnce.Do(func() {
				log.Warn().Str("component", "store").Str("id", row.ID).Err(err).
					Msg("skipping unreadable invoice record")
			})
			continue
		}
		out = append(out, rec)
	}
	return out, skipped, nil
}

func (r *RecordRepo) Delete(id string) error {
	res := r.db.Delete(&models.InvoiceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return invoice.ErrNotFound
	}
	return nil
}

func (r *RecordRepo) Numbers() ([]string, error) {
	var numbers []string
	if err := r.db.Model(&models.InvoiceRecord{}).Pluck("document_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}
