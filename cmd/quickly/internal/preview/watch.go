package preview

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/quickly/cmd/quickly/internal/config"
)

// Watch reloads the scene at path whenever the file is written or
// recreated and delivers a ReloadMsg to send. The directory is watched
// rather than the file so editors that replace the file on save keep
// working. The returned function stops watching.
func Watch(path string, send func(tea.Msg)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := config.Load(path)
				send(ReloadMsg{Scene: cfg, Err: err})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(ReloadMsg{Err: err})
			}
		}
	}()
	return func() {
		close(done)
		w.Close()
	}, nil
}
