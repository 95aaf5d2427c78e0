package preview

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// startWatcher creates the fsnotify watcher on the record file's directory.
// Watching the directory rather than the file survives editors that replace
// the file on save.
func (m *Model) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		m.log.WithComponent("preview").Error(err, "file watching unavailable")
		m.watching = false
		return
	}
	if err := watcher.Add(filepath.Dir(m.recordPath)); err != nil {
		m.log.WithComponent("preview").Error(err, "file watching unavailable")
		_ = watcher.Close()
		m.watching = false
		return
	}
	m.watcher = watcher
}

// waitForChange blocks on the next relevant watcher event.
func (m Model) waitForChange() tea.Cmd {
	watcher := m.watcher
	target := filepath.Clean(m.recordPath)
	if watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return watchClosedMsg{}
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return watchClosedMsg{}
				}
			}
		}
	}
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}
