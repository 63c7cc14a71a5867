package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kpscli/kps/pkg/problem"
	"github.com/kpscli/kps/pkg/project"
	"github.com/kpscli/kps/pkg/template"
	"gopkg.in/yaml.v3"
)

var (
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrFileNotFound      = errors.New("file not found")
	ErrNoRecentFile      = errors.New("no recent file: create one with 'kps new' first")
	ErrRecentFileDeleted = errors.New("recent file no longer exists")
)

// Store manages the files of one kps project.
type Store struct {
	Root   project.Root
	Config *Config
}

// Open loads the config of a located project.
func Open(root project.Root) (*Store, error) {
	cfg, err := LoadConfig(root.ConfigPath())
	if err != nil {
		return nil, err
	}
	return &Store{Root: root, Config: cfg}, nil
}

// InitProject creates .kps/config.json under dir.
func InitProject(dir string, cfg *Config, force bool) (project.Root, error) {
	root := project.Root{Dir: dir}
	if _, err := os.Stat(root.ConfigPath()); err == nil && !force {
		return project.Root{}, ErrConfigAlreadyExists
	}
	if err := cfg.validate(); err != nil {
		return project.Root{}, err
	}
	if err := SaveConfig(root.ConfigPath(), cfg); err != nil {
		return project.Root{}, err
	}
	return root, nil
}

// UpdateConfig sets k in the config file and reloads s.Config. Environment
// overrides are never written to disk.
func (s *Store) UpdateConfig(k ConfigKey, value string) error {
	path := s.Root.ConfigPath()
	onDisk, err := LoadFileConfig(path)
	if err != nil {
		return err
	}
	if err := onDisk.Set(k, value); err != nil {
		return err
	}
	if err := SaveConfig(path, onDisk); err != nil {
		return err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	s.Config = cfg
	return nil
}

// SourceDir returns the directory solutions for platform are written to.
func (s *Store) SourceDir(platform problem.Platform) string {
	return filepath.Join(s.Root.Dir, s.Config.SourceFolder, platform.FolderName())
}

// SolutionPath returns the absolute path of p's solution file.
func (s *Store) SolutionPath(p problem.Problem) string {
	return filepath.Join(s.Root.Dir, p.RelPath(s.Config.SourceFolder))
}

// CreateSolution renders the template for p and writes it. An existing file
// is never overwritten.
func (s *Store) CreateSolution(p problem.Problem, now time.Time) (string, error) {
	path := s.SolutionPath(p)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFileAlreadyExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating source directory: %w", err)
	}

	content, err := template.Render(template.NewData(p, s.Config.ProjectName, s.Config.Author, now))
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}

// ExistingSolution returns p's solution path, or ErrFileNotFound.
func (s *Store) ExistingSolution(p problem.Problem) (string, error) {
	path := s.SolutionPath(p)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return path, nil
}

// Solution is a solution file found on disk.
type Solution struct {
	Problem problem.Problem
	Path    string
	ModTime time.Time
}

// ListSolutions returns every solution file under the source folder, BOJ
// first, numerically ordered within a platform.
func (s *Store) ListSolutions() ([]Solution, error) {
	var solutions []Solution
	for _, platform := range problem.Platforms {
		dir := s.SourceDir(platform)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		var found []Solution
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			number, ok := strings.CutSuffix(entry.Name(), "."+problem.SourceExtension)
			if !ok {
				continue
			}
			p, err := problem.New(platform, number)
			if err != nil {
				continue // not a generated file
			}
			sol := Solution{Problem: p, Path: filepath.Join(dir, entry.Name())}
			if info, err := entry.Info(); err == nil {
				sol.ModTime = info.ModTime()
			}
			found = append(found, sol)
		}
		sort.SliceStable(found, func(i, j int) bool {
			return numericLess(found[i].Problem.Number, found[j].Problem.Number)
		})
		solutions = append(solutions, found...)
	}
	return solutions, nil
}

func numericLess(a, b string) bool {
	x, errA := strconv.ParseUint(a, 10, 64)
	y, errB := strconv.ParseUint(b, 10, 64)
	if errA != nil || errB != nil || x == y {
		return a < b
	}
	return x < y
}

// LoadHistory reads .kps/history.yaml; a missing file is an empty history.
func (s *Store) LoadHistory() (*History, error) {
	data, err := os.ReadFile(s.Root.HistoryPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var h History
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return &h, nil
}

// SaveHistory writes h to .kps/history.yaml.
func (s *Store) SaveHistory(h *History) error {
	data, err := yaml.Marshal(h)
	if err != nil {
		return fmt.Errorf("serializing history: %w", err)
	}
	if err := os.MkdirAll(s.Root.MarkerPath(), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", project.MarkerDir, err)
	}
	return writeFileAtomic(s.Root.HistoryPath(), data)
}

// RecordHistory marks p as the most recently used solution.
func (s *Store) RecordHistory(p problem.Problem, now time.Time) error {
	h, err := s.LoadHistory()
	if err != nil {
		return err
	}
	h.Add(HistoryEntry{
		Platform: p.Platform,
		Number:   p.Number,
		Path:     p.RelPath(s.Config.SourceFolder),
		At:       now,
	})
	return s.SaveHistory(h)
}

// RecentSolution returns the absolute path of the newest history entry.
func (s *Store) RecentSolution() (HistoryEntry, string, error) {
	h, err := s.LoadHistory()
	if err != nil {
		return HistoryEntry{}, "", err
	}
	recent, ok := h.MostRecent()
	if !ok {
		return HistoryEntry{}, "", ErrNoRecentFile
	}
	path := filepath.Join(s.Root.Dir, recent.Path)
	if _, err := os.Stat(path); err != nil {
		return HistoryEntry{}, "", fmt.Errorf("%w: %s", ErrRecentFileDeleted, path)
	}
	return recent, path, nil
}
