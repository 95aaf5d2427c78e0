package record

import "strings"

// legacyMediaKinds maps media-kind spellings written by earlier editor
// versions to the canonical enum.
var legacyMediaKinds = map[string]MediaKind{
	"photo":     MediaImage,
	"picture":   MediaImage,
	"single":    MediaImage,
	"slideshow": MediaCarousel,
	"slides":    MediaCarousel,
	"gallery":   MediaCarousel,
	"movie":     MediaVideo,
}

// legacyOverlayNames maps earlier overlay labels to the canonical enum.
var legacyOverlayNames = map[string]OverlayIntensity{
	"soft":   OverlayLight,
	"normal": OverlayMedium,
	"strong": OverlayDark,
}

// Normalize folds every legacy field and spelling into the canonical record
// shape. It runs exactly once, at the ingestion boundary, so the rendering
// code only ever sees one shape. The input is not mutated.
func Normalize(raw Record) Record {
	rec := raw

	// Couple names were stored as name1/name2 before categories existed.
	if rec.BrideName == "" {
		rec.BrideName = rec.LegacyName1
	}
	if rec.GroomName == "" {
		rec.GroomName = rec.LegacyName2
	}
	if rec.VenueName == "" {
		rec.VenueName = rec.LegacyPlace
	}
	if rec.TemplateID == "" {
		rec.TemplateID = rec.LegacyTemplate
	}
	rec.LegacyName1 = ""
	rec.LegacyName2 = ""
	rec.LegacyPlace = ""
	rec.LegacyTemplate = ""

	if kind, ok := legacyMediaKinds[strings.ToLower(string(rec.Style.Background.Kind))]; ok {
		rec.Style.Background.Kind = kind
	}
	if intensity, ok := legacyOverlayNames[strings.ToLower(string(rec.Style.OverlayIntensity))]; ok {
		rec.Style.OverlayIntensity = intensity
	}

	// An explicit preset id implies preset mode even when the type field
	// was never written, which is the case for records saved before the
	// background-type selector existed.
	if rec.Style.Background.Type == BackgroundDefault && rec.Style.Background.PresetID != "" {
		rec.Style.Background.Type = BackgroundPreset
	}
	if rec.Style.Background.Type == BackgroundDefault && (rec.Style.Background.Kind != MediaNone || len(rec.Style.Background.Images) > 0) {
		rec.Style.Background.Type = BackgroundMedia
	}

	// A carousel with a single image behaves like a plain image; an image
	// selection without any image reference is meaningless and resets to
	// the template default.
	bg := &rec.Style.Background
	if bg.Kind == MediaCarousel && len(bg.Images) == 1 {
		bg.Kind = MediaImage
	}
	if (bg.Kind == MediaImage || bg.Kind == MediaCarousel) && len(bg.Images) == 0 {
		bg.Kind = MediaNone
	}
	if bg.Kind == MediaVideo && bg.VideoURL == "" {
		bg.Kind = MediaNone
	}

	return rec
}
