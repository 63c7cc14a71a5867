package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/kpscli/kps/pkg/editor"
	"github.com/kpscli/kps/pkg/problem"
	"github.com/kpscli/kps/pkg/store"
)

// FileChangedMsg is sent when the file watcher detects changes.
type FileChangedMsg struct{}

// EditorFinishedMsg is sent when the editor returns.
type EditorFinishedMsg struct {
	Problem problem.Problem
	Err     error
}

// Model is the Bubble Tea model for browsing solutions.
type Model struct {
	store  *store.Store
	keys   KeyMap
	width  int
	height int

	items  []Item
	cursor int

	showHelpModal bool

	// Status message
	statusMsg     string
	statusTimeout time.Time

	preview     string
	previewPath string

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int

	now func() time.Time
}

// NewModel creates a new TUI model.
func NewModel(s *store.Store) Model {
	m := Model{
		store: s,
		keys:  DefaultKeyMap(),
		now:   time.Now,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.previewPath = "" // re-render at the new width
		m.updatePreview()
		return m, tea.ClearScreen

	case FileChangedMsg:
		m.reload()
		return m, nil

	case EditorFinishedMsg:
		if msg.Err != nil {
			m.setStatus("Editor error: " + msg.Err.Error())
		} else if err := m.store.RecordHistory(msg.Problem, m.now()); err != nil {
			m.setStatus("Error saving history: " + err.Error())
		} else {
			m.setStatus("Closed " + msg.Problem.String())
		}
		m.previewPath = ""
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelpModal {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" || key.Matches(msg, m.keys.Quit) {
			m.showHelpModal = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = true

	case key.Matches(msg, m.keys.Up):
		if i := nextSelectable(m.items, m.cursor-1, -1); i >= 0 {
			m.cursor = i
		}

	case key.Matches(msg, m.keys.Down):
		if i := nextSelectable(m.items, m.cursor+1, 1); i >= 0 {
			m.cursor = i
		}

	case key.Matches(msg, m.keys.Top):
		if i := nextSelectable(m.items, 0, 1); i >= 0 {
			m.cursor = i
		}

	case key.Matches(msg, m.keys.Bottom):
		if i := nextSelectable(m.items, len(m.items)-1, -1); i >= 0 {
			m.cursor = i
		}

	case key.Matches(msg, m.keys.NextPlatform):
		m.jumpToNextPlatform()

	case key.Matches(msg, m.keys.Reload):
		m.reload()
		m.setStatus("Reloaded")

	case key.Matches(msg, m.keys.Open):
		if sol := m.Selected(); sol != nil {
			return m, m.openEditor(sol)
		}
	}

	m.updatePreview()
	return m, nil
}

// Selected returns the solution under the cursor, or nil.
func (m Model) Selected() *store.Solution {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor].Solution
}

func (m *Model) jumpToNextPlatform() {
	if len(m.items) == 0 {
		return
	}
	current := m.items[m.cursor].Platform
	for i := m.cursor + 1; i < len(m.items); i++ {
		if !m.items[i].IsSectionHeader && m.items[i].Platform != current {
			m.cursor = i
			return
		}
	}
	// Wrap to the first platform.
	if i := nextSelectable(m.items, 0, 1); i >= 0 {
		m.cursor = i
	}
}

// reload rereads the solution list and keeps the cursor on the same file
// when it still exists.
func (m *Model) reload() {
	var selected string
	if sol := m.Selected(); sol != nil {
		selected = sol.Path
	}

	solutions, err := m.store.ListSolutions()
	if err != nil {
		m.setStatus("Error: " + err.Error())
		return
	}
	m.items = BuildItems(solutions)

	m.cursor = nextSelectable(m.items, 0, 1)
	for i, item := range m.items {
		if item.Solution != nil && item.Solution.Path == selected {
			m.cursor = i
			break
		}
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updatePreview()
}

func (m *Model) updatePreview() {
	sol := m.Selected()
	if sol == nil {
		m.preview = ""
		m.previewPath = ""
		return
	}
	if sol.Path == m.previewPath {
		return
	}
	m.previewPath = sol.Path

	data, err := os.ReadFile(sol.Path)
	if err != nil {
		m.preview = "Error reading file: " + err.Error()
		return
	}
	source := "```" + problem.SourceExtension + "\n" + string(data) + "\n```\n"

	r := m.getGlamourRenderer(m.previewWidth())
	if r == nil {
		m.preview = string(data)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		m.preview = string(data)
		return
	}
	m.preview = out
}

func (m Model) previewWidth() int {
	w := m.width - listWidth(m.width) - 1 - 2
	if w < 20 {
		w = 20
	}
	return w
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = m.now().Add(3 * time.Second)
}

func (m *Model) openEditor(sol *store.Solution) tea.Cmd {
	opts := editor.Options{}
	if xp := m.store.Config.XcodeProjectPath; xp != "" {
		opts.XcodeProject = filepath.Join(m.store.Root.Dir, xp)
	}
	c := editor.Command(context.Background(), sol.Path, opts)
	p := sol.Problem
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return EditorFinishedMsg{Problem: p, Err: err}
	})
}
