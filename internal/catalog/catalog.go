// Package catalog enumerates the built-in invitation templates. The table is
// defined at build time and immutable at runtime; template ids are stable
// and never reused.
package catalog

import (
	"strconv"
	"strings"

	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/schema"
)

// Layout identifies one of the six hero arrangements.
type Layout string

const (
	LayoutCentered   Layout = "centered"
	LayoutBottomLeft Layout = "bottom_left"
	LayoutTopCenter  Layout = "top_center"
	LayoutSplit      Layout = "split"
	LayoutMinimal    Layout = "minimal"
	LayoutCorporate  Layout = "corporate"
)

// Layouts lists every known layout id.
var Layouts = []Layout{
	LayoutCentered, LayoutBottomLeft, LayoutTopCenter,
	LayoutSplit, LayoutMinimal, LayoutCorporate,
}

// Descriptor binds a template id to its category, layout and default
// styling. Avatar arity is advisory: a layout without an avatar slot ignores
// it rather than rendering one.
type Descriptor struct {
	ID              int
	Name            string
	Category        schema.Category
	Layout          Layout
	BackgroundAsset string
	PreviewTag      string
	Overlay         record.OverlayIntensity
	AccentColor     string
	AccentTint      string
	AvatarCount     int
	AvatarGlyphs    []string
}

// legacyIDs maps the string identifiers used before templates were numbered.
var legacyIDs = map[string]int{
	"classic":  1,
	"modern":   2,
	"bohemian": 3,
}

// NormalizeID resolves a raw persisted template selector (numeric string or
// legacy name) to an integer id. Unresolvable input yields 0, which Get
// treats as unknown.
func NormalizeID(raw string) int {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return 0
	}
	if id, ok := legacyIDs[raw]; ok {
		return id
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// Get returns the descriptor for the given id.
func Get(id int) (Descriptor, bool) {
	for _, d := range templates {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// All returns the full catalog in id order. The returned slice is a copy.
func All() []Descriptor {
	out := make([]Descriptor, len(templates))
	copy(out, templates)
	return out
}
