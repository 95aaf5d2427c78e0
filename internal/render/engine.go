// Package render implements the template composition and rendering engine:
// it resolves a template selector, a data record and customization
// parameters into a fully resolved invitation visual tree. The engine is
// stateless and reentrant; one call produces one tree. It is also total
// over its input domain: any record, including one persisted under an
// earlier schema version, renders something rather than failing, because
// the output sits on a public unauthenticated page.
package render

import (
	"fmt"
	"time"

	"github.com/invitekit/invitekit/internal/markup"
	"github.com/invitekit/invitekit/internal/record"
)

// Mode selects whether the trailing sections are appended after the hero.
type Mode string

const (
	// ModeFullPage appends Event-Details, RSVP (when enabled) and Footer.
	ModeFullPage Mode = "full_page"
	// ModeEmbedded renders the hero alone: editor preview, export
	// capture, payment preview and the demo renderer all use this.
	ModeEmbedded Mode = "embedded"
)

// Options carries the per-call-site rendering parameters.
type Options struct {
	// Template selects the template; when empty the record's own
	// template id is used.
	Template string
	// Mode defaults to embedded.
	Mode Mode
	// Now anchors the countdown. The zero value means wall-clock time;
	// export and tests inject a fixed instant for deterministic output.
	Now time.Time
	// Width and Height, when positive, force a fixed canvas size (used
	// by the PNG/PDF export capture).
	Width  int
	Height int
}

// Render produces the invitation visual tree. It never returns an error and
// never panics on any input; unresolvable configuration degrades to
// documented defaults and an unresolvable template renders a short
// placeholder notice.
func Render(rec *record.Record, opts Options) *markup.Node {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	root := markup.El("article").WithClass("invitation")
	if opts.Width > 0 && opts.Height > 0 {
		root.WithStyle("width", fmt.Sprintf("%dpx", opts.Width)).
			WithStyle("height", fmt.Sprintf("%dpx", opts.Height)).
			WithStyle("overflow", "hidden")
	}

	cfg, ok := Resolve(opts.Template, rec, now)
	if !ok {
		return root.Append(renderPlaceholder())
	}

	// Video media replaces the layout variant with the dedicated
	// two-region video hero.
	if cfg.Record.Style.Background.Kind == record.MediaVideo {
		root.Append(renderVideoHero(cfg))
	} else {
		root.Append(renderHero(cfg, arrangementFor(cfg.Template.Layout)))
	}

	if opts.Mode == ModeFullPage {
		root.Append(renderEventDetails(cfg))
		if cfg.Record.RSVPEnabled {
			root.Append(renderRSVP(cfg))
		}
		root.Append(renderFooter(cfg))
	}

	return root
}
