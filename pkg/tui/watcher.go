package tui

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/kpscli/kps/pkg/problem"
)

const reloadDelay = 200 * time.Millisecond

// watcher forwards solution file changes under a directory tree to a
// running program.
type watcher struct {
	fs     *fsnotify.Watcher
	root   string
	notify func()
	done   chan struct{}
}

// StartWatcher watches dir recursively and sends FileChangedMsg to program
// once changes settle. The returned func stops watching.
func StartWatcher(dir string, program *tea.Program) (func(), error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		fs:     fw,
		root:   dir,
		notify: func() { program.Send(FileChangedMsg{}) },
		done:   make(chan struct{}),
	}
	if err := w.addTree(dir); err != nil {
		fw.Close()
		return nil, err
	}

	go w.loop()

	return func() {
		close(w.done)
		fw.Close()
	}, nil
}

// addTree registers dir and every non-hidden directory below it.
func (w *watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.root && hidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

func (w *watcher) loop() {
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case <-w.fs.Errors:
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			// Platform folders appear after the first `kps new`.
			if event.Has(fsnotify.Create) {
				_ = w.addTree(event.Name)
			}
			if !isSolutionEvent(event) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(reloadDelay, w.notify)
		}
	}
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isSolutionEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return strings.HasSuffix(event.Name, "."+problem.SourceExtension)
}
