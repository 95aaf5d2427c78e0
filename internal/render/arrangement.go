package render

import "github.com/invitekit/invitekit/internal/catalog"

// slot names one position in a layout's element order. Slots cover the
// logical elements plus the purely decorative divider; which slots actually
// produce output is decided by the shared element renderers against the
// visibility set.
type slot string

const (
	slotSubtitle  slot = "subtitle"
	slotMainTitle slot = "main_title"
	slotAvatar    slot = "avatar"
	slotSecondary slot = "secondary"
	slotDivider   slot = "divider"
	slotNote      slot = "note"
	slotDateVenue slot = "date_venue"
	slotCountdown slot = "countdown"
	slotReminder  slot = "reminder"
	slotScroll    slot = "scroll"
)

// Arrangement parameterizes the single hero renderer per layout variant.
// The six variants differ only in these knobs; all element rendering and
// visibility logic is shared, so the variants cannot drift apart.
type Arrangement struct {
	Layout catalog.Layout

	// Align is the horizontal alignment of the hero content column.
	Align string
	// Justify is the vertical placement of the content within the hero.
	Justify string

	// Order lists the slots top to bottom.
	Order []slot

	// Split renders the two-region variant: media above, text panel below,
	// instead of text over a full-bleed background.
	Split bool

	// AvatarSlot reports whether this arrangement reserves space for
	// avatars. When false the template's avatar arity is ignored.
	AvatarSlot bool

	// Divider controls whether the decorative divider slot produces
	// output.
	Divider bool
}

var arrangements = map[catalog.Layout]Arrangement{
	catalog.LayoutCentered: {
		Layout:     catalog.LayoutCentered,
		Align:      "center",
		Justify:    "center",
		AvatarSlot: true,
		Divider:    true,
		Order: []slot{
			slotSubtitle, slotAvatar, slotMainTitle, slotSecondary, slotDivider,
			slotNote, slotDateVenue, slotCountdown, slotReminder, slotScroll,
		},
	},
	catalog.LayoutBottomLeft: {
		Layout:     catalog.LayoutBottomLeft,
		Align:      "flex-start",
		Justify:    "flex-end",
		AvatarSlot: true,
		Divider:    true,
		Order: []slot{
			slotAvatar, slotSubtitle, slotMainTitle, slotSecondary, slotDivider,
			slotDateVenue, slotNote, slotCountdown, slotReminder, slotScroll,
		},
	},
	catalog.LayoutTopCenter: {
		Layout:     catalog.LayoutTopCenter,
		Align:      "center",
		Justify:    "flex-start",
		AvatarSlot: true,
		Divider:    true,
		Order: []slot{
			slotMainTitle, slotSubtitle, slotAvatar, slotSecondary, slotDivider,
			slotDateVenue, slotCountdown, slotNote, slotReminder, slotScroll,
		},
	},
	catalog.LayoutSplit: {
		Layout:     catalog.LayoutSplit,
		Align:      "center",
		Justify:    "flex-start",
		Split:      true,
		AvatarSlot: true,
		Divider:    true,
		Order: []slot{
			slotAvatar, slotSubtitle, slotMainTitle, slotSecondary, slotDivider,
			slotNote, slotDateVenue, slotCountdown, slotReminder,
		},
	},
	catalog.LayoutMinimal: {
		Layout:  catalog.LayoutMinimal,
		Align:   "center",
		Justify: "center",
		Order: []slot{
			slotSubtitle, slotMainTitle, slotSecondary,
			slotDateVenue, slotNote, slotCountdown, slotReminder, slotScroll,
		},
	},
	catalog.LayoutCorporate: {
		Layout:     catalog.LayoutCorporate,
		Align:      "flex-start",
		Justify:    "center",
		Divider:    true,
		Order: []slot{
			slotSecondary, slotMainTitle, slotSubtitle, slotDivider,
			slotDateVenue, slotNote, slotCountdown, slotReminder, slotScroll,
		},
	},
}

// arrangementFor returns the arrangement for a layout id. Unknown or
// missing ids default to the centered layout.
func arrangementFor(layout catalog.Layout) Arrangement {
	if arr, ok := arrangements[layout]; ok {
		return arr
	}
	return arrangements[catalog.LayoutCentered]
}
