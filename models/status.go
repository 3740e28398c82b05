// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Status is the stage an internship application is in.
type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusRejected     Status = "Rejected"
	StatusOffer        Status = "Offer"
)

// DefaultStatus is assigned to new records.
const DefaultStatus = StatusApplied

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusApplied, StatusInterviewing, StatusRejected, StatusOffer}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusRejected, StatusOffer:
		return true
	}
	return false
}

// Next returns the status that follows s in display order, wrapping around.
// Unknown values map to [DefaultStatus].
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return DefaultStatus
}

// Prev returns the status that precedes s in display order, wrapping around.
// Unknown values map to [DefaultStatus].
func (s Status) Prev() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+len(Statuses)-1)%len(Statuses)]
		}
	}
	return DefaultStatus
}

// StatusFilter selects records by status. [FilterAll] keeps every record.
type StatusFilter string

// FilterAll disables status filtering.
const FilterAll StatusFilter = "All"

// StatusFilters lists the filter values in the order the dashboard cycles them.
var StatusFilters = []StatusFilter{
	FilterAll,
	StatusFilter(StatusApplied),
	StatusFilter(StatusInterviewing),
	StatusFilter(StatusRejected),
	StatusFilter(StatusOffer),
}

// Valid reports whether f is All or a valid status.
func (f StatusFilter) Valid() bool {
	return f == FilterAll || Status(f).Valid()
}

// Next returns the filter after f in [StatusFilters], wrapping around.
func (f StatusFilter) Next() StatusFilter {
	for i, sf := range StatusFilters {
		if sf == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return FilterAll
}

// SortOrder orders records by deadline.
type SortOrder string

const (
	SortDeadlineAsc  SortOrder = "deadline-asc"
	SortDeadlineDesc SortOrder = "deadline-desc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == SortDeadlineAsc || o == SortDeadlineDesc
}

// Toggle flips between ascending and descending order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortDeadlineDesc {
		return SortDeadlineAsc
	}
	return SortDeadlineDesc
}
