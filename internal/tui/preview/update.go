package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/invitekit/invitekit/internal/record"
)

// Update handles messages. The countdown tick is the only recurring work;
// everything else is reactive.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.closeWatcher()
			return m, tea.Quit
		case "r":
			return m, m.reloadRecord()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case fileChangedMsg:
		m.log.WithComponent("preview").Debug("record file changed, reloading")
		return m, tea.Batch(m.reloadRecord(), m.waitForChange())

	case watchClosedMsg:
		m.watching = false
		return m, nil

	case recordReloadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.rec = msg.rec
		m.resolve()
		return m, nil

	case spinner.TickMsg:
		if !m.watching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// reloadRecord re-reads the record file off the update loop.
func (m Model) reloadRecord() tea.Cmd {
	path := m.recordPath
	return func() tea.Msg {
		rec, err := record.Load(path)
		return recordReloadedMsg{rec: rec, err: err}
	}
}
