package preview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/invitekit/invitekit/internal/record"
)

func previewRecord() *record.Record {
	rec := record.Normalize(record.Record{
		Category:  "Wedding",
		BrideName: "Ayşe",
		GroomName: "Mehmet",
		EventDate: "2031-06-15",
		VenueName: "Çırağan Sarayı",
	})
	return &rec
}

func TestNewModelResolvesConfiguration(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
	require.True(t, m.cfgOK)
	require.Equal(t, "Ayşe & Mehmet", m.cfg.Title)
}

func TestTickAdvancesClock(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, cmd := m.Update(tickMsg(at))
	require.NotNil(t, cmd, "tick must reschedule itself")
	require.Equal(t, at, updated.(Model).now)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}
	for _, key := range keys {
		m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
		updated, cmd := m.Update(key)
		require.NotNil(t, cmd, "key %s should quit", key.String())
		require.True(t, updated.(Model).quitting, "key %s should quit", key.String())
	}
}

func TestRecordReloadReresolves(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)

	changed := previewRecord()
	changed.BrideName = "Zeynep"
	updated, _ := m.Update(recordReloadedMsg{rec: changed})

	require.Equal(t, "Zeynep & Mehmet", updated.(Model).cfg.Title)
}

func TestRecordReloadErrorKeepsLastGoodConfig(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
	updated, _ := m.Update(recordReloadedMsg{err: errFake})

	got := updated.(Model)
	require.True(t, got.cfgOK)
	require.Equal(t, "Ayşe & Mehmet", got.cfg.Title)
	require.Error(t, got.loadErr)
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "disk unhappy" }

func TestViewShowsHero(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
	m.now = time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)

	view := m.View()
	require.Contains(t, view, "Ayşe & Mehmet")
	require.Contains(t, view, "Çırağan Sarayı")
	require.Contains(t, view, "gün")
	require.Contains(t, view, "q: çıkış")
}

func TestViewUnresolvableTemplate(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "999", previewRecord(), false, nil)
	require.False(t, m.cfgOK)
	require.Contains(t, m.View(), "bulunamadı")
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m := NewModel("invitation.yaml", "1", previewRecord(), false, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, updated.(Model).width)
}
