// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Page is one fetched batch of users plus pagination metadata. A page is
// always replaced as a whole, never merged with another fetch.
type Page struct {
	Number     int
	Items      []User
	TotalPages int
	// PerPage and Total are informational and may be zero when the service
	// does not report them.
	PerPage int
	Total   int
}

// EmptyPage is the state before the first successful fetch.
func EmptyPage() Page {
	return Page{Number: 1, TotalPages: 1}
}

// Clone returns a copy whose Items slice does not alias p's.
func (p Page) Clone() Page {
	c := p
	c.Items = append([]User(nil), p.Items...)
	return c
}

// IndexOf returns the position of the user with id, or -1.
func (p Page) IndexOf(id int) int {
	for i, u := range p.Items {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// MutationKind identifies the remote operation of a PendingMutation.
type MutationKind int

const (
	MutationCreate MutationKind = iota + 1
	MutationUpdate
	MutationDelete
)

func (k MutationKind) String() string {
	switch k {
	case MutationCreate:
		return "create"
	case MutationUpdate:
		return "update"
	case MutationDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// PendingMutation describes a remote mutation for the duration of one call.
// Target is zero for creates.
type PendingMutation struct {
	Kind    MutationKind
	Target  int
	Payload any
}
