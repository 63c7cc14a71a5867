// Package project finds the kps project a working directory belongs to.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// MarkerDir is the hidden directory at the top of a kps project.
	MarkerDir = ".kps"
	// ConfigFile lives inside MarkerDir; its presence marks the root.
	ConfigFile = "config.json"
	// HistoryFile records recently touched solutions.
	HistoryFile = "history.yaml"
	// VCSMarker is only used to give a better diagnostic.
	VCSMarker = ".git"
)

var (
	ErrConfigNotFound          = errors.New("config not found: run 'kps init' first")
	ErrConfigNotFoundInGitRepo = errors.New("config not found in git repository: run 'kps init' to initialize kps in this repository")
)

// Root is an absolute directory with MarkerDir/ConfigFile beneath it.
type Root struct {
	Dir string
}

// MarkerPath returns <root>/.kps.
func (r Root) MarkerPath() string {
	return filepath.Join(r.Dir, MarkerDir)
}

// ConfigPath returns <root>/.kps/config.json.
func (r Root) ConfigPath() string {
	return filepath.Join(r.Dir, MarkerDir, ConfigFile)
}

// HistoryPath returns <root>/.kps/history.yaml.
func (r Root) HistoryPath() string {
	return filepath.Join(r.Dir, MarkerDir, HistoryFile)
}

// Rel returns path relative to the root, or path unchanged if it is not
// beneath it.
func (r Root) Rel(path string) string {
	rel, err := filepath.Rel(r.Dir, path)
	if err != nil {
		return path
	}
	return rel
}

// Status classifies a Locate result.
type Status int

const (
	Found Status = iota
	NotFound
	NotFoundInGitRepo
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case NotFoundInGitRepo:
		return "not found in git repository"
	default:
		return "unknown"
	}
}

// Outcome is the result of Locate. Root is only set when Status is Found.
type Outcome struct {
	Status Status
	Root   Root
}

// Err converts a not-found outcome into the matching sentinel error.
func (o Outcome) Err() error {
	switch o.Status {
	case Found:
		return nil
	case NotFoundInGitRepo:
		return ErrConfigNotFoundInGitRepo
	default:
		return ErrConfigNotFound
	}
}

// Locate walks from start up to the filesystem root and returns the nearest
// directory containing .kps/config.json. When none exists, the outcome
// records whether any ancestor was a git repository.
func Locate(start string) Outcome {
	return locate(start, exists)
}

// LocateFromCwd runs Locate from the current working directory.
func LocateFromCwd() (Outcome, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Outcome{}, err
	}
	return Locate(cwd), nil
}

// Find is Locate collapsed to a root or an error.
func Find(start string) (Root, error) {
	o := Locate(start)
	return o.Root, o.Err()
}

func locate(start string, exists func(string) bool) Outcome {
	dir, err := filepath.Abs(start)
	if err != nil {
		dir = filepath.Clean(start)
	}

	inGitRepo := false
	for {
		if exists(filepath.Join(dir, MarkerDir, ConfigFile)) {
			return Outcome{Status: Found, Root: Root{Dir: dir}}
		}
		if !inGitRepo && exists(filepath.Join(dir, VCSMarker)) {
			inGitRepo = true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if inGitRepo {
		return Outcome{Status: NotFoundInGitRepo}
	}
	return Outcome{Status: NotFound}
}

// exists treats any stat failure, including permission errors, as absent.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
