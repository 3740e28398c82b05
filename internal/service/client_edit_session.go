package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/models"
)

// EditState is either [Inactive] or [Editing].
type EditState interface {
	editState()
}

// Inactive means the form adds a new record; Draft is its working copy.
type Inactive struct {
	Draft models.InternshipFields
}

// Editing means the form edits RecordID; WorkingCopy holds the edited
// fields.
type Editing struct {
	RecordID    string
	WorkingCopy models.InternshipFields
}

func (Inactive) editState() {}
func (Editing) editState()  {}

// EditSession is the state machine behind the add/edit form.
type EditSession struct {
	state EditState
}

// NewEditSession starts Inactive with an empty draft.
func NewEditSession() *EditSession {
	return &EditSession{state: Inactive{Draft: models.NewInternshipFields()}}
}

func (e *EditSession) State() EditState {
	return e.state
}

// Fields returns the working copy of the current state.
func (e *EditSession) Fields() models.InternshipFields {
	switch st := e.state.(type) {
	case Editing:
		return st.WorkingCopy
	case Inactive:
		return st.Draft
	}
	return models.NewInternshipFields()
}

// SetFields replaces the working copy without changing state.
func (e *EditSession) SetFields(fields models.InternshipFields) {
	switch st := e.state.(type) {
	case Editing:
		st.WorkingCopy = fields
		e.state = st
	default:
		e.state = Inactive{Draft: fields}
	}
}

// BeginEdit switches to Editing rec, discarding any unsaved draft.
func (e *EditSession) BeginEdit(rec models.Internship) {
	e.state = Editing{RecordID: rec.ID, WorkingCopy: rec.InternshipFields}
}

// CancelEdit returns to Inactive with an empty draft.
func (e *EditSession) CancelEdit() {
	e.state = Inactive{Draft: models.NewInternshipFields()}
}

// CommitEdit creates a record from the draft when Inactive, or updates the
// edited record when Editing. On success it returns the record id and the
// session is reset; on failure the state is left as it was so the user can
// retry.
func (e *EditSession) CommitEdit(ctx context.Context, sync RecordSync, userID string) (string, error) {
	var (
		id  string
		err error
	)

	switch st := e.state.(type) {
	case Editing:
		id = st.RecordID
		err = sync.Update(ctx, st.RecordID, st.WorkingCopy)
	case Inactive:
		id, err = sync.Create(ctx, userID, st.Draft)
	}
	if err != nil {
		return "", err
	}

	e.CancelEdit()
	return id, nil
}
