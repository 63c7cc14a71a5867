package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kpscli/kps/pkg/problem"
	"github.com/kpscli/kps/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	root, err := InitProject(dir, &Config{
		Author:       "tester",
		SourceFolder: "Sources",
		ProjectName:  "Algorithms",
	}, false)
	require.NoError(t, err)

	s, err := Open(root)
	require.NoError(t, err)
	return s
}

var (
	boj1000 = problem.Problem{Platform: problem.BOJ, Number: "1000"}
	prg42   = problem.Problem{Platform: problem.Programmers, Number: "42"}
)

func TestInitProject(t *testing.T) {
	s := setupTestStore(t)

	_, err := os.Stat(filepath.Join(s.Root.Dir, ".kps", "config.json"))
	require.NoError(t, err)

	o := project.Locate(s.Root.Dir)
	assert.Equal(t, project.Found, o.Status)
	assert.Equal(t, "tester", s.Config.Author)
}

func TestInitProjectExisting(t *testing.T) {
	s := setupTestStore(t)

	cfg := &Config{Author: "other", SourceFolder: "src", ProjectName: "x"}
	_, err := InitProject(s.Root.Dir, cfg, false)
	assert.ErrorIs(t, err, ErrConfigAlreadyExists)

	_, err = InitProject(s.Root.Dir, cfg, true)
	require.NoError(t, err)

	reopened, err := Open(s.Root)
	require.NoError(t, err)
	assert.Equal(t, "other", reopened.Config.Author)
	assert.Equal(t, "src", reopened.Config.SourceFolder)
}

func TestCreateSolution(t *testing.T) {
	s := setupTestStore(t)
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	path, err := s.CreateSolution(boj1000, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root.Dir, "Sources", "BOJ", "1000.swift"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Created by tester on 2026/1/2.")
	assert.Contains(t, string(data), "// Algorithms")
	assert.Contains(t, string(data), "func _1000() {")
}

func TestCreateSolutionDuplicate(t *testing.T) {
	s := setupTestStore(t)

	path, err := s.CreateSolution(boj1000, time.Now())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("solved"), 0644))

	_, err = s.CreateSolution(boj1000, time.Now())
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "solved", string(data))
}

func TestExistingSolution(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.ExistingSolution(prg42)
	assert.ErrorIs(t, err, ErrFileNotFound)

	created, err := s.CreateSolution(prg42, time.Now())
	require.NoError(t, err)

	path, err := s.ExistingSolution(prg42)
	require.NoError(t, err)
	assert.Equal(t, created, path)
}

func TestListSolutions(t *testing.T) {
	s := setupTestStore(t)

	for _, p := range []problem.Problem{
		{Platform: problem.Programmers, Number: "42"},
		{Platform: problem.BOJ, Number: "10000"},
		{Platform: problem.BOJ, Number: "1000"},
		{Platform: problem.BOJ, Number: "2557"},
	} {
		_, err := s.CreateSolution(p, time.Now())
		require.NoError(t, err)
	}
	// Files that were not generated by kps are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(s.SourceDir(problem.BOJ), "notes.md"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.SourceDir(problem.BOJ), "helper.swift"), nil, 0644))

	solutions, err := s.ListSolutions()
	require.NoError(t, err)

	var got []string
	for _, sol := range solutions {
		got = append(got, sol.Problem.String())
	}
	assert.Equal(t, []string{"[BOJ] 1000", "[BOJ] 2557", "[BOJ] 10000", "[Programmers] 42"}, got)
}

func TestListSolutionsEmpty(t *testing.T) {
	s := setupTestStore(t)

	solutions, err := s.ListSolutions()
	require.NoError(t, err)
	assert.Empty(t, solutions)
}

func TestRecordHistory(t *testing.T) {
	s := setupTestStore(t)

	_, _, err := s.RecentSolution()
	assert.ErrorIs(t, err, ErrNoRecentFile)

	_, err = s.CreateSolution(boj1000, time.Now())
	require.NoError(t, err)
	_, err = s.CreateSolution(prg42, time.Now())
	require.NoError(t, err)

	require.NoError(t, s.RecordHistory(boj1000, time.Now()))
	require.NoError(t, s.RecordHistory(prg42, time.Now()))

	entry, path, err := s.RecentSolution()
	require.NoError(t, err)
	assert.Equal(t, prg42, entry.Problem())
	assert.Equal(t, s.SolutionPath(prg42), path)

	// Re-recording moves the entry to the front without duplicating it.
	require.NoError(t, s.RecordHistory(boj1000, time.Now()))
	h, err := s.LoadHistory()
	require.NoError(t, err)
	require.Len(t, h.Entries, 2)
	assert.Equal(t, boj1000, h.Entries[0].Problem())
	assert.Equal(t, filepath.Join("Sources", "BOJ", "1000.swift"), h.Entries[0].Path)
}

func TestRecentSolutionDeleted(t *testing.T) {
	s := setupTestStore(t)

	path, err := s.CreateSolution(boj1000, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.RecordHistory(boj1000, time.Now()))
	require.NoError(t, os.Remove(path))

	_, _, err = s.RecentSolution()
	assert.ErrorIs(t, err, ErrRecentFileDeleted)
}

func TestHistoryCap(t *testing.T) {
	var h History
	for i := 0; i < MaxHistory+10; i++ {
		h.Add(HistoryEntry{Platform: problem.BOJ, Number: "1", Path: filepath.Join("x", string(rune('a'+i%26)), string(rune('a'+i/26)))})
	}
	assert.Len(t, h.Entries, MaxHistory)
}

func TestHistoryAddMovesToFront(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	a := HistoryEntry{Platform: problem.BOJ, Number: "1000", Path: "Sources/BOJ/1000.swift", At: at}
	b := HistoryEntry{Platform: problem.Programmers, Number: "42", Path: "Sources/Programmers/42.swift", At: at.Add(time.Minute)}
	again := a
	again.At = at.Add(2 * time.Minute)

	var h History
	h.Add(a)
	h.Add(b)
	h.Add(again)

	want := []HistoryEntry{again, b}
	if diff := cmp.Diff(want, h.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadHistory(t *testing.T) {
	s := setupTestStore(t)
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	h := &History{Entries: []HistoryEntry{
		{Platform: problem.BOJ, Number: "1000", Path: "Sources/BOJ/1000.swift", At: at},
	}}
	require.NoError(t, s.SaveHistory(h))

	got, err := s.LoadHistory()
	require.NoError(t, err)
	if diff := cmp.Diff(h.Entries, got.Entries); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHistoryCorrupt(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, os.WriteFile(s.Root.HistoryPath(), []byte("entries: [unclosed"), 0644))

	_, err := s.LoadHistory()
	assert.Error(t, err)
}

func TestUpdateConfigKeepsEnvOutOfFile(t *testing.T) {
	s := setupTestStore(t)
	t.Setenv("KPS_AUTHOR", "ci-bot")

	require.NoError(t, s.UpdateConfig(KeyProjectName, "Renamed"))
	assert.Equal(t, "ci-bot", s.Config.Author)
	assert.Equal(t, "Renamed", s.Config.ProjectName)

	onDisk, err := LoadFileConfig(s.Root.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "tester", onDisk.Author)
	assert.Equal(t, "Renamed", onDisk.ProjectName)
}

func TestUpdateConfigRejectsEmpty(t *testing.T) {
	s := setupTestStore(t)
	err := s.UpdateConfig(KeyAuthor, " ")
	assert.ErrorIs(t, err, ErrEmptyConfigValue)
	assert.Equal(t, "tester", s.Config.Author)
}
