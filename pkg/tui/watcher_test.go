package tui

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSolutionEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"create swift", fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Create}, true},
		{"write swift", fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Write}, true},
		{"remove swift", fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "Sources/BOJ/notes.md", Op: fsnotify.Write}, false},
		{"directory", fsnotify.Event{Name: "Sources/BOJ", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSolutionEvent(tt.event))
		})
	}
}

func TestWatcherAddTreeSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"Sources/BOJ", "Sources/Programmers", ".kps", ".git/objects"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0755))
	}

	fw, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer fw.Close()

	w := &watcher{fs: fw, root: dir}
	require.NoError(t, w.addTree(dir))

	watched := fw.WatchList()
	assert.ElementsMatch(t, []string{
		dir,
		filepath.Join(dir, "Sources"),
		filepath.Join(dir, "Sources", "BOJ"),
		filepath.Join(dir, "Sources", "Programmers"),
	}, watched)
}

func startTestLoop(t *testing.T) (*watcher, *atomic.Int32, chan struct{}) {
	t.Helper()
	fw, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })

	var sent atomic.Int32
	w := &watcher{
		fs:     fw,
		root:   t.TempDir(),
		notify: func() { sent.Add(1) },
		done:   make(chan struct{}),
	}
	exited := make(chan struct{})
	go func() {
		w.loop()
		close(exited)
	}()
	return w, &sent, exited
}

func TestWatcherDebouncesChanges(t *testing.T) {
	w, sent, exited := startTestLoop(t)
	for range 3 {
		w.fs.Events <- fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Write}
	}

	assert.Eventually(t, func() bool { return sent.Load() == 1 }, time.Second, 10*time.Millisecond)
	close(w.done)
	<-exited
}

func TestWatcherStopCancelsPendingReload(t *testing.T) {
	w, sent, exited := startTestLoop(t)
	w.fs.Events <- fsnotify.Event{Name: "Sources/BOJ/1000.swift", Op: fsnotify.Write}
	close(w.done)
	<-exited

	time.Sleep(2 * reloadDelay)
	assert.Equal(t, int32(0), sent.Load())
}
