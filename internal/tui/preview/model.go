// Package preview implements the terminal live preview of an invitation
// record: the editor call site of the rendering engine. The hero summary
// re-renders on every record change and the countdown ticks once per
// second, mirroring what the published page shows.
package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/invitekit/invitekit/internal/logger"
	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/render"
)

// tickMsg advances the countdown clock.
type tickMsg time.Time

// recordReloadedMsg carries the result of re-reading the record file.
type recordReloadedMsg struct {
	rec *record.Record
	err error
}

// fileChangedMsg reports a watcher event on the record file.
type fileChangedMsg struct{}

// watchClosedMsg reports that the watcher channel closed.
type watchClosedMsg struct{}

// Model is the bubbletea model for the live preview.
type Model struct {
	recordPath string
	template   string

	rec     *record.Record
	cfg     render.Config
	cfgOK   bool
	loadErr error

	now      time.Time
	width    int
	height   int
	quitting bool

	watching bool
	watcher  *fsnotify.Watcher
	spinner  spinner.Model

	log *logger.Logger
}

// NewModel creates a preview model for the given record file. When watch is
// true the record file is re-read whenever it changes on disk.
func NewModel(recordPath, template string, rec *record.Record, watch bool, log *logger.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		recordPath: recordPath,
		template:   template,
		rec:        rec,
		now:        time.Now(),
		watching:   watch,
		spinner:    s,
		log:        log,
	}
	m.resolve()
	if watch {
		m.startWatcher()
	}
	return m
}

// resolve recomputes the render configuration from the current record.
func (m *Model) resolve() {
	m.cfg, m.cfgOK = render.Resolve(m.template, m.rec, m.now)
}

// Init starts the countdown ticker and, in watch mode, the watcher loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watching && m.watcher != nil {
		cmds = append(cmds, m.waitForChange(), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules the next one-second countdown update.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
