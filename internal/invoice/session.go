package invoice

import (
	"errors"
	"fmt"
)

// SessionState is the editing lifecycle of a single invoice.
type SessionState int

const (
	StateIdle SessionState = iota
	StateEditing
	StateExporting
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateExporting:
		return "exporting"
	}
	return "unknown"
}

var (
	// ErrExportBusy is returned when an export is requested while one is
	// already in flight for this session.
	ErrExportBusy = errors.New("invoice: export already in progress")
	// ErrIllegalTransition is returned for any transition not part of the
	// Idle -> Editing -> Exporting lifecycle.
	ErrIllegalTransition = errors.New("invoice: illegal session transition")
)

// Session replaces the boolean busy flag of the old UI with an explicit state
// machine. It is the caller-held re-entrancy guard for exports: the renderer
// itself does not serialize calls. Single UI thread by construction, so no
// locking here.
type Session struct {
	state    SessionState
	draft    Draft
	recordID string
}

func NewSession() *Session { return &Session{state: StateIdle} }

func (s *Session) State() SessionState { return s.state }

// RecordID is the id of the loaded record, empty for a fresh draft.
func (s *Session) RecordID() string { return s.recordID }

// Draft returns a detached copy of the working draft. Mutations go through
// SetDraft; editing the returned value never reaches the session.
func (s *Session) Draft() Draft { return s.draft.Clone() }

// BeginNew starts editing a fresh draft.
func (s *Session) BeginNew(draft Draft) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: begin from %s", ErrIllegalTransition, s.state)
	}
	s.draft = draft.Clone()
	s.recordID = ""
	s.state = StateEditing
	return nil
}

// BeginEdit starts editing an existing record. The snapshot is deep-copied so
// edits never mutate the stored record until an explicit save.
func (s *Session) BeginEdit(rec Record) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: begin from %s", ErrIllegalTransition, s.state)
	}
	s.draft = rec.Snapshot.Clone()
	s.recordID = rec.ID
	s.state = StateEditing
	return nil
}

// SetDraft replaces the working copy wholesale.
func (s *Session) SetDraft(draft Draft) error {
	if s.state != StateEditing {
		return fmt.Errorf("%w: edit from %s", ErrIllegalTransition, s.state)
	}
	s.draft = draft.Clone()
	return nil
}

// Save writes the draft through the service. The session stays in Editing so
// the user can keep working; the returned record id becomes the session's
// record for in-place updates.
func (s *Session) Save(svc *Service, layout string) (Record, error) {
	if s.state != StateEditing {
		return Record{}, fmt.Errorf("%w: save from %s", ErrIllegalTransition, s.state)
	}
	rec, err := svc.Save(s.draft, layout, s.recordID)
	if err != nil {
		return Record{}, err
	}
	s.recordID = rec.ID
	return rec, nil
}

// BeginExport transitions into Exporting. A second export while one is in
// flight is rejected rather than queued. The store is never written during an
// export; save strictly precedes it.
func (s *Session) BeginExport() error {
	switch s.state {
	case StateExporting:
		return ErrExportBusy
	case StateEditing:
		s.state = StateExporting
		return nil
	}
	return fmt.Errorf("%w: export from %s", ErrIllegalTransition, s.state)
}

// EndExport returns to Editing regardless of export success; a failed export
// leaves the already-saved record untouched.
func (s *Session) EndExport() {
	if s.state == StateExporting {
		s.state = StateEditing
	}
}

// Close abandons the session.
func (s *Session) Close() {
	s.state = StateIdle
	s.draft = Draft{}
	s.recordID = ""
}
