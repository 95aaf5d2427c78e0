package render

import "github.com/invitekit/invitekit/internal/record"

// OverlayRecipe is the darkening layer composited between the background and
// the hero text. Base is a flat tint; Bottom and Top are the gradient stops
// that keep text legible against busy photos.
type OverlayRecipe struct {
	Base   string
	Bottom string
	Top    string
}

var overlayRecipes = map[record.OverlayIntensity]OverlayRecipe{
	record.OverlayLight: {
		Base:   "rgba(0,0,0,0.15)",
		Bottom: "rgba(0,0,0,0.45)",
		Top:    "rgba(0,0,0,0.05)",
	},
	record.OverlayMedium: {
		Base:   "rgba(0,0,0,0.30)",
		Bottom: "rgba(0,0,0,0.60)",
		Top:    "rgba(0,0,0,0.15)",
	},
	record.OverlayDark: {
		Base:   "rgba(0,0,0,0.50)",
		Bottom: "rgba(0,0,0,0.80)",
		Top:    "rgba(0,0,0,0.30)",
	},
}

// Overlay returns the recipe for the given intensity. Unknown or missing
// intensities resolve to medium.
func Overlay(intensity record.OverlayIntensity) OverlayRecipe {
	if recipe, ok := overlayRecipes[intensity]; ok {
		return recipe
	}
	return overlayRecipes[record.OverlayMedium]
}

// gradient renders the recipe as a CSS background declaration.
func (r OverlayRecipe) gradient() string {
	return "linear-gradient(to bottom," + r.Top + "," + r.Base + " 40%," + r.Bottom + ")"
}
