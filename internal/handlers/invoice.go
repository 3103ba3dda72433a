package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/protools/toolbox/internal/httpx"
	"github.com/protools/toolbox/internal/invoice"
	"github.com/protools/toolbox/internal/pdf"
)

// InvoiceHandler drives the record store and the document renderer. Saving and
// exporting are separate requests; export always reads back the persisted
// record so the document can never show unsaved edits. Exports are
// single-flight per record: a second export for the same record while one is
// in flight is rejected, tracked by a session per record id.
type InvoiceHandler struct {
	svc      *invoice.Service
	renderer pdf.Renderer

	mu       sync.Mutex
	sessions map[string]*invoice.Session
}

func NewInvoiceHandler(svc *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{
		svc:      svc,
		renderer: pdf.New(),
		sessions: make(map[string]*invoice.Session),
	}
}

// beginExport moves the record's session into Exporting. Sessions are not
// goroutine-safe themselves, so transitions happen under the handler lock.
func (h *InvoiceHandler) beginExport(rec invoice.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[rec.ID]
	if !ok {
		sess = invoice.NewSession()
		if err := sess.BeginEdit(rec); err != nil {
			return err
		}
		h.sessions[rec.ID] = sess
	}
	return sess.BeginExport()
}

func (h *InvoiceHandler) endExport(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sess, ok := h.sessions[id]; ok {
		sess.EndExport()
		sess.Close()
		delete(h.sessions, id)
	}
}

type saveReq struct {
	Draft  invoice.Draft `json:"draft"`
	Layout string        `json:"layout"`
}

type saveResp struct {
	Record   invoice.Record `json:"record"`
	Totals   invoice.Totals `json:"totals"`
	Warnings []string       `json:"warnings,omitempty"`
}

type listResp struct {
	Records []invoice.Record `json:"records"`
	Skipped int              `json:"skipped,omitempty"`
}

// List handles GET /invoices; with ?id= it returns a single record.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		rec, err := h.svc.Get(id)
		if err != nil {
			if errors.Is(err, invoice.ErrNotFound) {
				httpx.JSONError(w, http.StatusNotFound, "invoice_not_found", nil)
				return
			}
			httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, rec)
		return
	}
	recs, skipped, err := h.svc.List()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	if recs == nil {
		recs = []invoice.Record{}
	}
	httpx.JSON(w, http.StatusOK, listResp{Records: recs, Skipped: skipped})
}

// Save handles POST /invoices; with ?id= it updates in place.
func (h *InvoiceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	existingID := r.URL.Query().Get("id")
	rec, err := h.svc.Save(req.Draft, req.Layout, existingID)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrEmptyDraft):
			httpx.JSONError(w, http.StatusUnprocessableEntity, "empty_draft", nil)
		case errors.Is(err, invoice.ErrDuplicateNumber):
			httpx.JSONError(w, http.StatusConflict, "duplicate_document_number", nil)
		default:
			log.Error().Err(err).Msg("invoice save failed")
			httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		}
		return
	}
	var warnings []string
	for _, fe := range invoice.Validate(rec.Snapshot) {
		warnings = append(warnings, fe.Field+": "+fe.Message)
	}
	totals := invoice.ComputeTotals(rec.Snapshot.Items, rec.Snapshot.LateFee)
	httpx.JSON(w, http.StatusOK, saveResp{Record: rec, Totals: totals, Warnings: warnings})
}

// Delete handles POST /invoices/delete?id=.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "invoice_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// NextNumber handles GET /invoices/next-number. With ?previous= the increment
// is computed from the given number; otherwise from the latest saved record.
func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	var number string
	if prev, ok := r.URL.Query()["previous"]; ok {
		number = invoice.NextDocumentNumber(prev[0])
	} else {
		var err error
		number, err = h.svc.NextNumber()
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "numbering_failed", nil)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"documentNumber": number})
}

// PDF handles GET /invoices/pdf?id= and streams the rendered document.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	rec, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "invoice_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
		return
	}
	if tpl := r.URL.Query().Get("template"); tpl != "" {
		rec.LayoutTemplate = tpl
	}
	if err := h.beginExport(rec); err != nil {
		if errors.Is(err, invoice.ErrExportBusy) {
			httpx.JSONError(w, http.StatusConflict, "export_in_progress", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "export_failed", nil)
		return
	}
	defer h.endExport(rec.ID)
	totals := invoice.ComputeTotals(rec.Snapshot.Items, rec.Snapshot.LateFee)
	body, err := h.renderer.Render(rec, totals)
	if err != nil {
		log.Error().Err(err).Str("invoice", rec.ID).Msg("pdf render failed")
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.Filename(rec.DocumentNumber)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
