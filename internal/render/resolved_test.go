package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invitekit/invitekit/internal/element"
	"github.com/invitekit/invitekit/internal/record"
)

func TestResolveDefaultsSubtitleAndNote(t *testing.T) {
	t.Parallel()

	rec := record.Normalize(record.Record{Category: "Wedding"})
	cfg, ok := Resolve("1", &rec, renderNow)
	require.True(t, ok)
	require.Equal(t, "Evleniyoruz", cfg.Subtitle)
	require.NotEmpty(t, cfg.NoteText)
}

func TestResolveRecordOverridesDefaults(t *testing.T) {
	t.Parallel()

	rec := record.Normalize(record.Record{
		Category: "Wedding",
		Subtitle: "Sonunda Evleniyoruz",
		Note:     "Notumuz",
	})
	cfg, ok := Resolve("1", &rec, renderNow)
	require.True(t, ok)
	require.Equal(t, "Sonunda Evleniyoruz", cfg.Subtitle)
	require.Equal(t, "Notumuz", cfg.NoteText)
}

func TestResolveOverlayPrecedence(t *testing.T) {
	t.Parallel()

	// Template 1 defaults to medium.
	base, ok := Resolve("1", &record.Record{}, renderNow)
	require.True(t, ok)
	require.Equal(t, Overlay(record.OverlayMedium), base.Overlay)

	rec := record.Record{Style: record.Style{OverlayIntensity: record.OverlayDark}}
	overridden, ok := Resolve("1", &rec, renderNow)
	require.True(t, ok)
	require.Equal(t, Overlay(record.OverlayDark), overridden.Overlay)
}

func TestResolveTextColorDefault(t *testing.T) {
	t.Parallel()

	cfg, ok := Resolve("1", &record.Record{}, renderNow)
	require.True(t, ok)
	require.Equal(t, "#ffffff", cfg.TextColor)

	rec := record.Record{Style: record.Style{TextColor: "#112233"}}
	cfg, ok = Resolve("1", &rec, renderNow)
	require.True(t, ok)
	require.Equal(t, "#112233", cfg.TextColor)
}

func TestResolveVisibilityIsSubsetOfWhitelist(t *testing.T) {
	t.Parallel()

	hide := false
	show := true
	rec := record.Record{Style: record.Style{Toggles: record.Toggles{
		Note:   &hide,
		Avatar: &show,
	}}}

	// Template 21 is corporate; its category whitelist has no avatar.
	cfg, ok := Resolve("21", &rec, renderNow)
	require.True(t, ok)
	require.False(t, cfg.Visible.Has(element.Avatar))
	require.False(t, cfg.Visible.Has(element.Note))
	for _, id := range cfg.Visible.IDs() {
		require.True(t, cfg.Schema.Elements.Has(id))
	}
}

func TestResolveUnresolvableTemplate(t *testing.T) {
	t.Parallel()

	_, ok := Resolve("999", &record.Record{}, renderNow)
	require.False(t, ok)
	_, ok = Resolve("", &record.Record{}, renderNow)
	require.False(t, ok)
}

func TestResolveCountdownTargetWithoutDate(t *testing.T) {
	t.Parallel()

	cfg, ok := Resolve("1", &record.Record{}, renderNow)
	require.True(t, ok)
	require.False(t, cfg.HasEvent)
	require.True(t, cfg.countdownTarget().IsZero())
}
