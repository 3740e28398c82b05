// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeadlineLayout is the calendar-date layout used for [InternshipFields.Deadline].
const DeadlineLayout = "2006-01-02"

// InternshipFields holds the user-editable part of an internship application.
//
// The same value is used as the form working copy on the client and as the
// request payload for create and update calls.
type InternshipFields struct {
	// Company is the employer the application was sent to.
	Company string `json:"company" validate:"required"`

	// Role is the position title.
	Role string `json:"role" validate:"required"`

	// Link points to the job posting or the application portal.
	Link string `json:"link" validate:"required,url"`

	// Deadline is the application deadline as an ISO calendar date (YYYY-MM-DD).
	Deadline string `json:"deadline" validate:"required,datetime=2006-01-02"`

	// Status is the current stage of the application.
	Status Status `json:"status" validate:"required,internship_status"`

	// Notes is optional free text.
	Notes string `json:"notes"`
}

// NewInternshipFields returns an empty working copy with the default status.
func NewInternshipFields() InternshipFields {
	return InternshipFields{Status: DefaultStatus}
}

// DeadlineTime parses Deadline. The boolean is false when the value is not
// a valid calendar date.
func (f InternshipFields) DeadlineTime() (time.Time, bool) {
	t, err := time.Parse(DeadlineLayout, f.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Internship is one record of the internships collection.
//
// ID is assigned by the store on insert and never changes. UserID is set
// once at creation. Created is stamped by the client when the record is
// created; Updated is refreshed on every update and is nil until then.
type Internship struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	InternshipFields

	Created time.Time  `json:"created"`
	Updated *time.Time `json:"updated,omitempty"`
}

// TableName returns the name of the database table
// associated with the Internship model.
func (i Internship) TableName() string {
	return "internships"
}

// RecordSet is one emission of a live subscription: the complete current
// set of a user's records. Seq grows by one with every emission for the
// same user, so consumers can tell snapshots apart and check their order.
type RecordSet struct {
	Seq     uint64       `json:"seq"`
	Records []Internship `json:"records"`
}

// Filter is the predicate of a live query. Only equality on a single field
// is supported.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FilterFieldUserID is the only field the document store filters on.
const FilterFieldUserID = "userId"

// OwnedBy returns the filter that selects the records of one user.
func OwnedBy(userID string) Filter {
	return Filter{Field: FilterFieldUserID, Value: userID}
}
