package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	kiterrors "github.com/invitekit/invitekit/pkg/errors"
)

func TestNormalizeLegacyNames(t *testing.T) {
	t.Parallel()

	rec := Normalize(Record{LegacyName1: "Ayşe", LegacyName2: "Mehmet", LegacyPlace: "Çırağan Sarayı"})
	require.Equal(t, "Ayşe", rec.BrideName)
	require.Equal(t, "Mehmet", rec.GroomName)
	require.Equal(t, "Çırağan Sarayı", rec.VenueName)
	require.Empty(t, rec.LegacyName1)
	require.Empty(t, rec.LegacyName2)
	require.Empty(t, rec.LegacyPlace)
}

func TestNormalizeCanonicalFieldsWin(t *testing.T) {
	t.Parallel()

	rec := Normalize(Record{BrideName: "Zeynep", LegacyName1: "Ayşe"})
	require.Equal(t, "Zeynep", rec.BrideName)
}

func TestNormalizeLegacyTemplateField(t *testing.T) {
	t.Parallel()

	rec := Normalize(Record{LegacyTemplate: "classic"})
	require.Equal(t, "classic", rec.TemplateID)
}

func TestNormalizeLegacyMediaKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want MediaKind
	}{
		{"photo", MediaImage},
		{"Slideshow", MediaCarousel},
		{"movie", MediaVideo},
		{"video", MediaVideo},
	}
	for _, tt := range tests {
		rec := Normalize(Record{Style: Style{Background: Background{
			Kind:     MediaKind(tt.raw),
			Images:   []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			VideoURL: "https://cdn.example.com/v.mp4",
		}}})
		require.Equal(t, tt.want, rec.Style.Background.Kind, "kind %q", tt.raw)
	}
}

func TestNormalizeLegacyOverlayNames(t *testing.T) {
	t.Parallel()

	rec := Normalize(Record{Style: Style{OverlayIntensity: "strong"}})
	require.Equal(t, OverlayDark, rec.Style.OverlayIntensity)
}

func TestNormalizeBackgroundTypeInference(t *testing.T) {
	t.Parallel()

	withPreset := Normalize(Record{Style: Style{Background: Background{PresetID: "blush"}}})
	require.Equal(t, BackgroundPreset, withPreset.Style.Background.Type)

	withMedia := Normalize(Record{Style: Style{Background: Background{
		Kind:   MediaImage,
		Images: []string{"https://cdn.example.com/a.jpg"},
	}}})
	require.Equal(t, BackgroundMedia, withMedia.Style.Background.Type)
}

func TestNormalizeDegenerateMedia(t *testing.T) {
	t.Parallel()

	oneImageCarousel := Normalize(Record{Style: Style{Background: Background{
		Kind:   MediaCarousel,
		Images: []string{"https://cdn.example.com/a.jpg"},
	}}})
	require.Equal(t, MediaImage, oneImageCarousel.Style.Background.Kind)

	emptyImage := Normalize(Record{Style: Style{Background: Background{Kind: MediaImage}}})
	require.Equal(t, MediaNone, emptyImage.Style.Background.Kind)

	emptyVideo := Normalize(Record{Style: Style{Background: Background{Kind: MediaVideo}}})
	require.Equal(t, MediaNone, emptyVideo.Style.Background.Kind)
}

func TestEventDateTime(t *testing.T) {
	t.Parallel()

	rec := &Record{EventDate: "2026-06-15", EventTime: "17:30"}
	ts, ok := rec.EventDateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 6, 15, 17, 30, 0, 0, time.Local), ts)

	dateOnly := &Record{EventDate: "2026-06-15"}
	ts, ok = dateOnly.EventDateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local), ts)

	_, ok = (&Record{}).EventDateTime()
	require.False(t, ok)

	_, ok = (&Record{EventDate: "next summer"}).EventDateTime()
	require.False(t, ok)
}

func TestEventDateTimeToleratesBadTime(t *testing.T) {
	t.Parallel()

	rec := &Record{EventDate: "2026-06-15", EventTime: "evening"}
	ts, ok := rec.EventDateTime()
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local), ts)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invitation.yaml")
	content := []byte(`
category: Wedding
template_id: "1"
name1: Ayşe
name2: Mehmet
event_date: "2026-06-15"
rsvp_enabled: true
style:
  overlay: strong
  show:
    note: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Ayşe", rec.BrideName)
	require.Equal(t, "Mehmet", rec.GroomName)
	require.Equal(t, OverlayDark, rec.Style.OverlayIntensity)
	require.NotNil(t, rec.Style.Toggles.Note)
	require.False(t, *rec.Style.Toggles.Note)
}

func TestLoadInvalidDate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invitation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("event_date: sometime\n"), 0o644))

	_, err := Load(path)
	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "EventDate")
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invitation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("category: [unterminated\n"), 0o644))

	_, err := Load(path)
	var parseErr *kiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invitation.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"category":"Birthday/Party","age":"5"}`), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Birthday/Party", rec.Category)
	require.Equal(t, "5", rec.Age)
}

func TestTogglesElementToggles(t *testing.T) {
	t.Parallel()

	hide := false
	toggles := Toggles{Note: &hide}.ElementToggles()
	require.NotNil(t, toggles["note"])
	require.False(t, *toggles["note"])
	require.Nil(t, toggles["date"])
}
