package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/invitekit/invitekit/internal/element"
	"github.com/invitekit/invitekit/internal/render"
)

// View renders the preview frame: a stylized hero summary plus the resolved
// configuration, so an editor sees immediately which elements their toggles
// and category allow.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	if !m.cfgOK {
		b.WriteString(errorStyle.Render("Davetiye şablonu bulunamadı."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: çıkış"))
		return b.String()
	}

	accent := lipgloss.Color(m.cfg.Template.AccentColor)

	var hero []string
	if m.cfg.Visible.Has(element.Subtitle) {
		hero = append(hero, subtitleStyle.Render(m.cfg.Subtitle))
	}
	hero = append(hero, titleStyle.Foreground(accent).Render(m.cfg.Title))
	if m.cfg.Visible.Has(element.Venue) && m.rec != nil && m.rec.VenueName != "" {
		hero = append(hero, secondaryStyle.Render(m.rec.VenueName))
	}
	if m.cfg.Visible.Has(element.Date) && m.cfg.HasEvent {
		hero = append(hero, secondaryStyle.Render(m.cfg.EventAt.Format("02.01.2006")))
	}
	if m.cfg.Visible.Has(element.Countdown) {
		units := render.Breakdown(m.cfg.EventAt, m.now)
		line := render.Pad(units.Days) + " gün " + render.Pad(units.Hours) + ":" +
			render.Pad(units.Minutes) + ":" + render.Pad(units.Seconds)
		hero = append(hero, countdownStyle.Render(line))
	}

	box := heroBoxStyle.
		BorderForeground(accent).
		Width(min(width-4, 64)).
		Render(strings.Join(hero, "\n"))
	b.WriteString(box)
	b.WriteString("\n\n")

	b.WriteString(metaLabelStyle.Render("Şablon: "))
	b.WriteString(m.cfg.Template.Name)
	b.WriteString("  ")
	b.WriteString(metaLabelStyle.Render("Kategori: "))
	b.WriteString(string(m.cfg.Template.Category))
	b.WriteString("  ")
	b.WriteString(metaLabelStyle.Render("Arka plan: "))
	b.WriteString(string(m.cfg.Layer.Source))
	b.WriteString("\n")

	b.WriteString(metaLabelStyle.Render("Görünür öğeler: "))
	ids := m.cfg.Visible.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Kayıt okunamadı: " + m.loadErr.Error()))
		b.WriteString("\n")
	}

	help := "q: çıkış · r: yeniden yükle"
	if m.watching {
		help = m.spinner.View() + " değişiklikler izleniyor · " + help
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}
