package render

import (
	"strconv"

	"github.com/invitekit/invitekit/internal/markup"
)

// renderHero renders the hero for one arrangement. All six layout variants
// flow through here; the arrangement descriptor is the only thing that
// varies.
func renderHero(cfg Config, arr Arrangement) *markup.Node {
	if arr.Split {
		return renderSplitHero(cfg, arr)
	}

	hero := markup.El("section").
		WithClass("hero", "hero--"+string(arr.Layout)).
		WithStyle("color", cfg.TextColor)

	hero.Append(renderBackgroundLayer(cfg.Layer))
	hero.Append(renderOverlayLayer(cfg.Overlay))
	hero.Append(renderContent(cfg, arr))

	return hero
}

// renderSplitHero renders the two-region variant: media in a fixed-ratio
// upper region, text on a tinted panel below. No overlay is composited; the
// text never sits on the media.
func renderSplitHero(cfg Config, arr Arrangement) *markup.Node {
	media := markup.El("div", renderBackgroundLayer(cfg.Layer)).
		WithClass("hero__media")

	panel := renderContent(cfg, arr).
		WithClass("hero__panel").
		WithStyle("background", cfg.Template.AccentTint).
		WithStyle("color", cfg.Template.AccentColor)

	return markup.El("section", media, panel).
		WithClass("hero", "hero--"+string(arr.Layout))
}

// renderContent renders the ordered element column.
func renderContent(cfg Config, arr Arrangement) *markup.Node {
	content := markup.El("div").
		WithClass("hero__content").
		WithStyle("align-items", arr.Align).
		WithStyle("justify-content", arr.Justify)
	if arr.Align == "center" {
		content.WithStyle("text-align", "center")
	}

	for _, s := range arr.Order {
		content.Append(renderSlot(cfg, arr, s))
	}
	return content
}

// renderBackgroundLayer emits exactly one background node for the resolved
// layer. Media loading is left to the host environment; the engine never
// waits for it.
func renderBackgroundLayer(layer BackgroundLayer) *markup.Node {
	switch layer.Source {
	case SourcePreset:
		return markup.El("div").
			WithClass("hero__bg", "hero__bg--preset").
			WithStyle("background", layer.CSS)
	case SourceCarousel:
		carousel := markup.El("div").
			WithClass("hero__bg", "hero__bg--carousel").
			WithAttr("data-carousel-interval", "5000")
		for i, src := range layer.Images {
			img := markup.El("img").
				WithClass("hero__bg-image").
				WithAttr("src", src).
				WithAttr("alt", "").
				WithAttr("data-carousel-index", strconv.Itoa(i))
			if i == 0 {
				img.WithClass("is-active")
			}
			carousel.Append(img)
		}
		return carousel
	case SourceImage:
		return markup.El("div",
			markup.El("img").
				WithClass("hero__bg-image").
				WithAttr("src", layer.Images[0]).
				WithAttr("alt", ""),
		).WithClass("hero__bg", "hero__bg--image")
	default:
		return markup.El("div").
			WithClass("hero__bg", "hero__bg--template").
			WithStyle("background-image", "url('"+layer.AssetRef+"')")
	}
}

func renderOverlayLayer(recipe OverlayRecipe) *markup.Node {
	return markup.El("div").
		WithClass("hero__overlay").
		WithStyle("background", recipe.gradient())
}
