package render

import "github.com/invitekit/invitekit/internal/markup"

// videoSlots is the fixed element order of the video hero's text region.
var videoSlots = []slot{
	slotSubtitle, slotMainTitle, slotSecondary, slotDivider,
	slotNote, slotDateVenue, slotCountdown, slotReminder,
}

// renderVideoHero renders the distinct video mode: a fixed-ratio video
// region on top and a solid-color text region below, replacing the layout
// variant entirely. No overlay composition and no background resolution
// happens here; the video is the only media.
func renderVideoHero(cfg Config) *markup.Node {
	video := markup.El("div",
		markup.El("video").
			WithClass("hero__video").
			WithAttr("src", cfg.Record.Style.Background.VideoURL).
			WithAttr("autoplay", "autoplay").
			WithAttr("muted", "muted").
			WithAttr("loop", "loop").
			WithAttr("playsinline", "playsinline"),
	).WithClass("hero__video-frame")

	arr := Arrangement{
		Layout:  "video",
		Align:   "center",
		Justify: "flex-start",
		Divider: true,
	}
	panel := markup.El("div").
		WithClass("hero__panel").
		WithStyle("background", cfg.Template.AccentTint).
		WithStyle("color", cfg.Template.AccentColor).
		WithStyle("text-align", "center")
	for _, s := range videoSlots {
		panel.Append(renderSlot(cfg, arr, s))
	}

	return markup.El("section", video, panel).
		WithClass("hero", "hero--video")
}
