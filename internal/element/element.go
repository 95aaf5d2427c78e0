// Package element defines the closed set of optional hero elements and the
// visibility-set arithmetic used to decide which of them render.
package element

import "sort"

// ID identifies one optional visual unit of the invitation hero.
type ID string

const (
	MainTitle       ID = "main_title"
	Subtitle        ID = "subtitle"
	Avatar          ID = "avatar"
	Note            ID = "note"
	Date            ID = "date"
	Venue           ID = "venue"
	Countdown       ID = "countdown"
	ReminderButton  ID = "reminder_button"
	ScrollIndicator ID = "scroll_indicator"
)

// All lists every known element id. New elements must be added here and to
// at least one category whitelist.
var All = []ID{
	MainTitle,
	Subtitle,
	Avatar,
	Note,
	Date,
	Venue,
	Countdown,
	ReminderButton,
	ScrollIndicator,
}

// Known reports whether id names a defined element.
func Known(id ID) bool {
	for _, e := range All {
		if e == id {
			return true
		}
	}
	return false
}

// Set is an immutable collection of element ids.
type Set struct {
	members map[ID]bool
}

// NewSet builds a set from the given ids. Unknown ids are ignored so that a
// stale whitelist entry can never leak a new element into view.
func NewSet(ids ...ID) Set {
	m := make(map[ID]bool, len(ids))
	for _, id := range ids {
		if Known(id) {
			m[id] = true
		}
	}
	return Set{members: m}
}

// Has reports membership.
func (s Set) Has(id ID) bool {
	return s.members[id]
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// IDs returns the members in a stable order.
func (s Set) IDs() []ID {
	out := make([]ID, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersect returns the set of ids present in both s and other.
func (s Set) Intersect(other Set) Set {
	m := make(map[ID]bool)
	for id := range s.members {
		if other.members[id] {
			m[id] = true
		}
	}
	return Set{members: m}
}

// Toggles carries the caller's per-element visibility switches. A nil entry
// means the caller expressed no preference for that element.
type Toggles map[ID]*bool

// Resolve computes the final visibility set: an element renders iff the
// category whitelist contains it and the caller toggle is not explicitly
// false. An absent toggle defaults to visible; a toggle for an element
// outside the whitelist is ignored, so the result is always a subset of the
// whitelist.
func Resolve(whitelist Set, toggles Toggles) Set {
	m := make(map[ID]bool, len(whitelist.members))
	for id := range whitelist.members {
		if t, ok := toggles[id]; ok && t != nil && !*t {
			continue
		}
		m[id] = true
	}
	return Set{members: m}
}
