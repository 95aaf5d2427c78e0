package render

import (
	"strings"

	"github.com/invitekit/invitekit/internal/markup"
)

// renderEventDetails renders the expanded event information section shown
// below the hero in full-page mode.
func renderEventDetails(cfg Config) *markup.Node {
	section := markup.El("section").WithClass("details")
	section.Append(markup.El("h2", markup.Text("Etkinlik Bilgileri")).WithClass("details__heading"))

	list := markup.El("dl").WithClass("details__list")
	addRow := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		list.Append(
			markup.El("dt", markup.Text(label)),
			markup.El("dd", markup.Text(value)),
		)
	}

	if cfg.HasEvent {
		addRow("Tarih", cfg.EventAt.Format("02.01.2006"))
		addRow("Saat", cfg.Record.EventTime)
	}
	addRow("Mekan", cfg.Record.VenueName)
	addRow("Adres", cfg.Record.VenueAddress)
	section.Append(list)

	if link := strings.TrimSpace(cfg.Record.MapLink); link != "" {
		section.Append(markup.El("a", markup.Text("Haritada Göster")).
			WithClass("details__map").
			WithAttr("href", link).
			WithAttr("target", "_blank").
			WithAttr("rel", "noopener"))
	}

	return section
}

// renderRSVP renders the RSVP form section. Submission handling belongs to
// the host page; the engine only produces the form markup.
func renderRSVP(cfg Config) *markup.Node {
	form := markup.El("form").
		WithClass("rsvp__form").
		WithAttr("method", "post").
		WithAttr("action", "#rsvp")

	form.Append(
		markup.El("label", markup.Text("Adınız Soyadınız"),
			markup.El("input").
				WithAttr("type", "text").
				WithAttr("name", "guest_name").
				WithAttr("required", "required"),
		),
		markup.El("label", markup.Text("Katılım"),
			markup.El("select",
				markup.El("option", markup.Text("Katılıyorum")).WithAttr("value", "attending"),
				markup.El("option", markup.Text("Katılamıyorum")).WithAttr("value", "not_attending"),
				markup.El("option", markup.Text("Belki")).WithAttr("value", "maybe"),
			).WithAttr("name", "status"),
		),
		markup.El("label", markup.Text("Kişi Sayısı"),
			markup.El("input").
				WithAttr("type", "number").
				WithAttr("name", "guest_count").
				WithAttr("min", "1").
				WithAttr("value", "1"),
		),
		markup.El("button", markup.Text("Gönder")).
			WithAttr("type", "submit").
			WithStyle("background", cfg.Template.AccentColor),
	)

	return markup.El("section",
		markup.El("h2", markup.Text("Katılım Bildirimi")).WithClass("rsvp__heading"),
		form,
	).WithClass("rsvp")
}

func renderFooter(cfg Config) *markup.Node {
	return markup.El("footer",
		markup.El("p", markup.Text(cfg.Title)).WithClass("footer__title"),
		markup.El("p", markup.Text("Bu davetiye sizin için hazırlandı.")).WithClass("footer__tagline"),
	).WithClass("footer").
		WithStyle("background", cfg.Template.AccentTint).
		WithStyle("color", cfg.Template.AccentColor)
}

// renderPlaceholder is the only user-visible failure surface: an
// unresolvable template renders this short notice instead of a hero, and
// nothing else.
func renderPlaceholder() *markup.Node {
	return markup.El("section",
		markup.El("p", markup.Text("Davetiye şablonu bulunamadı.")).WithClass("placeholder__notice"),
	).WithClass("placeholder")
}
