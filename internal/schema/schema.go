// Package schema holds the static per-category entry schemas: which fields a
// category collects, its default texts, how its display title is computed,
// and which optional hero elements it supports. The registry is built once
// at package load and never mutated.
package schema

import (
	"github.com/invitekit/invitekit/internal/element"
	"github.com/invitekit/invitekit/internal/record"
)

// Category identifies an event type.
type Category string

const (
	Wedding      Category = "Wedding"
	Engagement   Category = "Engagement"
	HennaNight   Category = "Henna Night"
	BabyShower   Category = "Baby Shower"
	GenderReveal Category = "Gender Reveal"
	Circumcision Category = "Circumcision"
	Birthday     Category = "Birthday/Party"
	Recitation   Category = "Recitation Gathering"
	Corporate    Category = "Corporate Meeting"
	Opening      Category = "Opening"
)

// InputKind describes the editor control used for a field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextarea InputKind = "textarea"
	InputDate     InputKind = "date"
	InputTime     InputKind = "time"
	InputURL      InputKind = "url"
)

// Field is one data-entry field definition for a category.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Kind        InputKind
	Optional    bool
}

// TitleFunc computes the hero display title from a record. Implementations
// never return an empty string; each chain bottoms out in a fixed
// category-appropriate placeholder.
type TitleFunc func(*record.Record) string

// Schema describes one category's data entry and rendering capabilities.
type Schema struct {
	Category        Category
	Fields          []Field
	DefaultSubtitle string
	DefaultNote     string
	Elements        element.Set
	Title           TitleFunc
}

// ComputeTitle evaluates the category's title chain. A nil record behaves
// like an empty one.
func (s Schema) ComputeTitle(rec *record.Record) string {
	if rec == nil {
		rec = &record.Record{}
	}
	return s.Title(rec)
}

// Categories lists every registered category in registry order.
func Categories() []Category {
	out := make([]Category, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// Lookup returns the schema for the named category. Unknown names fall back
// to the Wedding schema; this is the documented default, not an error, so a
// record persisted under a retired category name still renders.
func Lookup(name string) Schema {
	if s, ok := registry[Category(name)]; ok {
		return s
	}
	return registry[Wedding]
}
