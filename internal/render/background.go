package render

import (
	"github.com/invitekit/invitekit/internal/catalog"
	"github.com/invitekit/invitekit/internal/record"
)

// BackgroundSource tags which layer won the background resolution.
type BackgroundSource string

const (
	SourcePreset   BackgroundSource = "preset"
	SourceImage    BackgroundSource = "image"
	SourceCarousel BackgroundSource = "carousel"
	SourceTemplate BackgroundSource = "template"
)

// presets are the built-in solid/gradient backgrounds selectable instead of
// a photo.
var presets = map[string]string{
	"blush":    "linear-gradient(160deg,#fde5e5,#f3bfc6)",
	"ivory":    "linear-gradient(160deg,#fdfaf3,#f1e8d8)",
	"sage":     "linear-gradient(160deg,#e8f0e6,#c9d8c5)",
	"midnight": "linear-gradient(160deg,#1c2233,#0d111c)",
	"sand":     "linear-gradient(160deg,#f7efe2,#e3cfa8)",
	"ocean":    "linear-gradient(160deg,#dff1f5,#9fc9d8)",
}

// BackgroundLayer is the resolved background: exactly one source is active.
type BackgroundLayer struct {
	Source BackgroundSource
	// CSS holds the preset gradient when Source is preset.
	CSS string
	// Images holds one URL for image, two or more for carousel.
	Images []string
	// AssetRef holds the template's built-in asset when Source is template.
	AssetRef string
}

// ResolveBackground picks exactly one background source. Priority, in
// order: a valid preset selection, a carousel with at least one image, a
// single uploaded image, then the template's built-in asset. Video never
// reaches this resolver; the orchestrator handles it as a distinct hero
// mode.
func ResolveBackground(desc catalog.Descriptor, bg record.Background) BackgroundLayer {
	if bg.Type == record.BackgroundPreset {
		if css, ok := presets[bg.PresetID]; ok {
			return BackgroundLayer{Source: SourcePreset, CSS: css}
		}
	}

	if bg.Kind == record.MediaCarousel && len(bg.Images) >= 1 {
		return BackgroundLayer{Source: SourceCarousel, Images: bg.Images}
	}
	if bg.Kind == record.MediaImage && len(bg.Images) >= 1 {
		return BackgroundLayer{Source: SourceImage, Images: bg.Images[:1]}
	}

	return BackgroundLayer{Source: SourceTemplate, AssetRef: desc.BackgroundAsset}
}
