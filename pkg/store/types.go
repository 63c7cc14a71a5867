package store

import (
	"time"

	"github.com/kpscli/kps/pkg/problem"
)

// Config is the project configuration stored in .kps/config.json.
type Config struct {
	Author           string `json:"author" mapstructure:"author"`
	SourceFolder     string `json:"sourceFolder" mapstructure:"sourceFolder"`
	ProjectName      string `json:"projectName" mapstructure:"projectName"`
	XcodeProjectPath string `json:"xcodeProjectPath,omitempty" mapstructure:"xcodeProjectPath"`
}

// DefaultSourceFolder is used by init when no folder is given.
const DefaultSourceFolder = "Sources"

// ConfigKey names a settable config field.
type ConfigKey string

const (
	KeyAuthor           ConfigKey = "author"
	KeySourceFolder     ConfigKey = "sourceFolder"
	KeyProjectName      ConfigKey = "projectName"
	KeyXcodeProjectPath ConfigKey = "xcodeProjectPath"
)

// ConfigKeys lists every key in display order.
var ConfigKeys = []ConfigKey{KeyAuthor, KeySourceFolder, KeyProjectName, KeyXcodeProjectPath}

// Description returns the help text for k.
func (k ConfigKey) Description() string {
	switch k {
	case KeyAuthor:
		return "Author name for file headers"
	case KeySourceFolder:
		return "Source folder path (e.g., 'Sources')"
	case KeyProjectName:
		return "Project name"
	case KeyXcodeProjectPath:
		return "Xcode project opened alongside solutions (optional)"
	default:
		return ""
	}
}

// HistoryEntry records one solution file kps created or opened.
type HistoryEntry struct {
	Platform problem.Platform `yaml:"platform"`
	Number   string           `yaml:"number"`
	Path     string           `yaml:"path"` // relative to the project root
	At       time.Time        `yaml:"at"`
}

// Problem returns the descriptor the entry refers to.
func (e HistoryEntry) Problem() problem.Problem {
	return problem.Problem{Platform: e.Platform, Number: e.Number}
}

// History is the newest-first list of recently used solutions.
type History struct {
	Entries []HistoryEntry `yaml:"entries"`
}

// MaxHistory caps the number of entries kept on disk.
const MaxHistory = 50

// MostRecent returns the newest entry.
func (h *History) MostRecent() (HistoryEntry, bool) {
	if h == nil || len(h.Entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.Entries[0], true
}

// Add puts e at the front, dropping older entries for the same path.
func (h *History) Add(e HistoryEntry) {
	entries := []HistoryEntry{e}
	for _, old := range h.Entries {
		if old.Path != e.Path {
			entries = append(entries, old)
		}
	}
	if len(entries) > MaxHistory {
		entries = entries[:MaxHistory]
	}
	h.Entries = entries
}
