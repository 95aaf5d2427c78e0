package render

import (
	"fmt"
	"strings"

	"github.com/invitekit/invitekit/internal/element"
	"github.com/invitekit/invitekit/internal/markup"
	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/schema"
)

// renderSlot renders one arrangement slot, or nil when the slot produces no
// output for this configuration. All visibility gating lives here, so every
// layout variant enforces the same rule: an element renders iff the
// visibility set contains it and its data is present.
func renderSlot(cfg Config, arr Arrangement, s slot) *markup.Node {
	switch s {
	case slotSubtitle:
		return renderSubtitle(cfg)
	case slotMainTitle:
		return renderMainTitle(cfg)
	case slotAvatar:
		return renderAvatars(cfg, arr)
	case slotSecondary:
		return renderSecondary(cfg)
	case slotDivider:
		return renderDivider(cfg, arr)
	case slotNote:
		return renderNoteElement(cfg)
	case slotDateVenue:
		return renderDateVenue(cfg)
	case slotCountdown:
		return renderCountdownElement(cfg)
	case slotReminder:
		return renderReminder(cfg)
	case slotScroll:
		return renderScrollHint(cfg)
	default:
		return nil
	}
}

func renderSubtitle(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.Subtitle) || cfg.Subtitle == "" {
		return nil
	}
	sub := markup.El("p", markup.Text(cfg.Subtitle)).
		WithClass("hero__subtitle").
		WithStyle("font-family", cfg.Fonts.Title)
	if size := cfg.Record.Style.TitleSize; size > 0 {
		sub.WithStyle("font-size", fmt.Sprintf("%dpx", size))
	}
	return sub
}

func renderMainTitle(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.MainTitle) {
		return nil
	}
	title := markup.El("h1", markup.Text(cfg.Title)).
		WithClass("hero__title").
		WithStyle("font-family", cfg.Fonts.Names)
	if size := cfg.Record.Style.NamesSize; size > 0 {
		title.WithStyle("font-size", fmt.Sprintf("%dpx", size))
	}
	return title
}

// renderAvatars renders the avatar row: uploaded images when present,
// otherwise the template's placeholder glyphs. Arity comes from the
// template; arrangements without an avatar slot ignore it entirely.
func renderAvatars(cfg Config, arr Arrangement) *markup.Node {
	if !arr.AvatarSlot || cfg.Template.AvatarCount == 0 || !cfg.Visible.Has(element.Avatar) {
		return nil
	}

	shape := cfg.Record.Style.AvatarShape
	if shape == "" {
		shape = record.AvatarCircle
	}

	row := markup.El("div").WithClass("hero__avatars", "hero__avatars--"+string(shape))
	images := cfg.Record.Style.AvatarImages
	for i := 0; i < cfg.Template.AvatarCount; i++ {
		if i < len(images) && images[i] != "" {
			row.Append(markup.El("img").
				WithClass("avatar").
				WithAttr("src", images[i]).
				WithAttr("alt", ""))
			continue
		}
		glyph := ""
		if i < len(cfg.Template.AvatarGlyphs) {
			glyph = cfg.Template.AvatarGlyphs[i]
		}
		row.Append(markup.El("span", markup.Text(glyph)).WithClass("avatar", "avatar--placeholder"))
	}
	return row
}

// renderSecondary renders the category-specific secondary line. It is the
// only place these lines are produced, so they can never appear twice in a
// hero.
func renderSecondary(cfg Config) *markup.Node {
	var text string
	switch cfg.Schema.Category {
	case schema.Circumcision:
		text = parentsLine(cfg.Record)
	case schema.Corporate, schema.Opening:
		// The organization already carries the title for these
		// categories; the secondary line holds the occasion.
		text = strings.TrimSpace(cfg.Record.Reason)
	case schema.Recitation:
		text = strings.TrimSpace(cfg.Record.Reason)
	case schema.BabyShower, schema.GenderReveal:
		text = hostLine(cfg.Record)
	default:
		return nil
	}
	if text == "" {
		return nil
	}
	return markup.El("p", markup.Text(text)).WithClass("hero__secondary")
}

func parentsLine(rec *record.Record) string {
	mother := strings.TrimSpace(rec.MotherName)
	father := strings.TrimSpace(rec.FatherName)
	switch {
	case mother != "" && father != "":
		return mother + " & " + father
	case mother != "":
		return mother
	default:
		return father
	}
}

func hostLine(rec *record.Record) string {
	host := strings.TrimSpace(rec.HostName)
	if host == "" {
		return ""
	}
	return host
}

func renderDivider(cfg Config, arr Arrangement) *markup.Node {
	if !arr.Divider {
		return nil
	}
	return markup.El("hr").
		WithClass("hero__divider").
		WithStyle("border-color", cfg.Template.AccentColor)
}

func renderNoteElement(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.Note) {
		return nil
	}
	body := renderNote(cfg.NoteText)
	if body == nil {
		return nil
	}
	note := markup.El("div", body).
		WithClass("hero__note").
		WithStyle("font-family", cfg.Fonts.Note)
	if size := cfg.Record.Style.NoteSize; size > 0 {
		note.WithStyle("font-size", fmt.Sprintf("%dpx", size))
	}
	return note
}

// renderDateVenue renders the date and venue lines as one block. Each line
// is independently gated by visibility and data presence.
func renderDateVenue(cfg Config) *markup.Node {
	block := markup.El("div").WithClass("hero__event")

	if cfg.Visible.Has(element.Date) && cfg.HasEvent {
		text := cfg.EventAt.Format("02.01.2006")
		if cfg.Record.EventTime != "" {
			text += " · " + cfg.Record.EventTime
		}
		block.Append(markup.El("p", markup.Text(text)).WithClass("hero__date"))
	}

	if cfg.Visible.Has(element.Venue) {
		venue := strings.TrimSpace(cfg.Record.VenueName)
		address := strings.TrimSpace(cfg.Record.VenueAddress)
		if venue != "" || address != "" {
			line := markup.El("p").WithClass("hero__venue")
			if venue != "" {
				line.Append(markup.El("span", markup.Text(venue)).WithClass("hero__venue-name"))
			}
			if address != "" {
				line.Append(markup.El("span", markup.Text(address)).WithClass("hero__venue-address"))
			}
			if link := strings.TrimSpace(cfg.Record.MapLink); link != "" {
				line.Append(markup.El("a", markup.Text("Yol Tarifi")).
					WithClass("hero__map-link").
					WithAttr("href", link).
					WithAttr("target", "_blank").
					WithAttr("rel", "noopener"))
			}
			block.Append(line)
		}
	}

	if len(block.Children()) == 0 {
		return nil
	}
	return block
}

func renderCountdownElement(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.Countdown) {
		return nil
	}
	return renderCountdown(cfg.countdownTarget(), cfg.Record.Style.CountdownStyle, cfg.Now, cfg.Template.AccentColor)
}

// renderReminder renders the add-to-calendar affordance. The host page
// wires the actual behavior; the engine only places the button.
func renderReminder(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.ReminderButton) {
		return nil
	}
	btn := markup.El("button", markup.Text("Bana Hatırlat")).
		WithClass("hero__reminder").
		WithAttr("type", "button").
		WithStyle("background", cfg.Template.AccentColor)
	if cfg.HasEvent {
		btn.WithAttr("data-event-date", cfg.EventAt.Format("2006-01-02"))
	}
	return btn
}

func renderScrollHint(cfg Config) *markup.Node {
	if !cfg.Visible.Has(element.ScrollIndicator) {
		return nil
	}
	return markup.El("div", markup.El("span").WithClass("scroll-hint__chevron")).
		WithClass("hero__scroll-hint")
}
