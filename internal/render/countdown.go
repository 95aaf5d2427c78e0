package render

import (
	"fmt"
	"time"

	"github.com/invitekit/invitekit/internal/markup"
	"github.com/invitekit/invitekit/internal/record"
)

// Units is the floored days/hours/minutes/seconds breakdown of the time
// remaining until an event.
type Units struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Breakdown computes the remaining units from now to target, clamped at
// zero. Given a fixed now it is a pure function of the target; a past or
// zero target yields all zeros, never negatives.
func Breakdown(target, now time.Time) Units {
	if target.IsZero() {
		return Units{}
	}
	remaining := target.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return Units{
		Days:    int(remaining.Hours()) / 24,
		Hours:   int(remaining.Hours()) % 24,
		Minutes: int(remaining.Minutes()) % 60,
		Seconds: int(remaining.Seconds()) % 60,
	}
}

// IsZero reports whether every unit is zero.
func (u Units) IsZero() bool {
	return u == Units{}
}

// Pad formats a unit value zero-padded to two digits.
func Pad(v int) string {
	return fmt.Sprintf("%02d", v)
}

// unitLabels in display order.
var unitLabels = []struct {
	label string
	value func(Units) int
}{
	{"Gün", func(u Units) int { return u.Days }},
	{"Saat", func(u Units) int { return u.Hours }},
	{"Dakika", func(u Units) int { return u.Minutes }},
	{"Saniye", func(u Units) int { return u.Seconds }},
}

// renderCountdown produces the countdown element. The current values are
// rendered inline so the tree is complete without scripting; the target is
// also exposed as a data attribute for the host page's one-second ticker.
func renderCountdown(target time.Time, style record.CountdownStyle, now time.Time, accent string) *markup.Node {
	units := Breakdown(target, now)

	wrapper := markup.El("div").WithClass("countdown", "countdown--"+countdownClass(style))
	if !target.IsZero() {
		wrapper.WithAttr("data-countdown-target", target.Format(time.RFC3339))
	}

	if style == record.CountdownMinimal {
		text := Pad(units.Days) + " / " + Pad(units.Hours) + " / " + Pad(units.Minutes) + " / " + Pad(units.Seconds)
		return wrapper.Append(markup.El("span", markup.Text(text)).WithClass("countdown__inline"))
	}

	for _, unit := range unitLabels {
		box := markup.El("div",
			markup.El("span", markup.Text(Pad(unit.value(units)))).WithClass("countdown__value"),
			markup.El("span", markup.Text(unit.label)).WithClass("countdown__label"),
		).WithClass("countdown__box")
		if style == record.CountdownModern {
			box.WithStyle("border-color", accent)
		}
		wrapper.Append(box)
	}
	return wrapper
}

func countdownClass(style record.CountdownStyle) string {
	switch style {
	case record.CountdownModern, record.CountdownMinimal:
		return string(style)
	default:
		return string(record.CountdownClassic)
	}
}
