package render

import (
	"time"

	"github.com/invitekit/invitekit/internal/catalog"
	"github.com/invitekit/invitekit/internal/element"
	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/schema"
)

// Config is the resolved render configuration: every concrete choice the
// layout needs, derived from template, schema and record. It is recomputed
// on every render call and never persisted.
type Config struct {
	Template catalog.Descriptor
	Schema   schema.Schema
	Record   *record.Record

	Title    string
	Subtitle string
	NoteText string

	Visible element.Set
	Layer   BackgroundLayer
	Overlay OverlayRecipe
	Fonts   Fonts

	TextColor string

	Now      time.Time
	EventAt  time.Time
	HasEvent bool
}

// Resolve derives the render configuration for one call. The boolean is
// false when the template selector cannot be resolved; the caller renders
// the placeholder notice in that case. Every other unknown input resolves
// to a documented default.
func Resolve(templateSelector string, rec *record.Record, now time.Time) (Config, bool) {
	if rec == nil {
		rec = &record.Record{}
	}
	if templateSelector == "" {
		templateSelector = rec.TemplateID
	}

	desc, ok := catalog.Get(catalog.NormalizeID(templateSelector))
	if !ok {
		return Config{}, false
	}

	s := schema.Lookup(string(desc.Category))

	cfg := Config{
		Template: desc,
		Schema:   s,
		Record:   rec,
		Title:    s.ComputeTitle(rec),
		Subtitle: rec.Subtitle,
		NoteText: rec.Note,
		Visible:  element.Resolve(s.Elements, rec.Style.Toggles.ElementToggles()),
		Layer:    ResolveBackground(desc, rec.Style.Background),
		Fonts:    ResolveFonts(rec.Style.Fonts),
		Now:      now,
	}
	if cfg.Subtitle == "" {
		cfg.Subtitle = s.DefaultSubtitle
	}
	if cfg.NoteText == "" {
		cfg.NoteText = s.DefaultNote
	}

	intensity := rec.Style.OverlayIntensity
	if intensity == record.OverlayUnset {
		intensity = desc.Overlay
	}
	cfg.Overlay = Overlay(intensity)

	cfg.TextColor = rec.Style.TextColor
	if cfg.TextColor == "" {
		cfg.TextColor = "#ffffff"
	}

	cfg.EventAt, cfg.HasEvent = rec.EventDateTime()

	return cfg, true
}

// countdownTarget returns the event timestamp, or the zero time when the
// record has no parseable date; Breakdown then yields all zeros.
func (c Config) countdownTarget() time.Time {
	if !c.HasEvent {
		return time.Time{}
	}
	return c.EventAt
}
