package problem

import "path/filepath"

// SourceExtension is the file extension of generated solutions.
const SourceExtension = "swift"

// Problem is a validated (platform, number) pair.
type Problem struct {
	Platform Platform `json:"platform" yaml:"platform"`
	Number   string   `json:"number" yaml:"number"`
}

// New validates platform and number and returns the descriptor.
func New(platform Platform, number string) (Problem, error) {
	if !isDigits(number) {
		return Problem{}, &ResolutionError{Kind: InvalidNumber, Input: number}
	}
	if !platform.Valid() {
		return Problem{}, &ResolutionError{Kind: PlatformRequired, Input: number}
	}
	return Problem{Platform: platform, Number: number}, nil
}

// URL returns the canonical problem page.
func (p Problem) URL() string {
	return p.Platform.ProblemURL(p.Number)
}

// FileName returns "<number>.swift".
func (p Problem) FileName() string {
	return p.Number + "." + SourceExtension
}

// FunctionName returns an identifier-safe form of the number. Swift
// identifiers cannot start with a digit, so the number is prefixed.
func (p Problem) FunctionName() string {
	return "_" + p.Number
}

// RelPath returns the solution path relative to the project root.
func (p Problem) RelPath(sourceFolder string) string {
	return filepath.Join(sourceFolder, p.Platform.FolderName(), p.FileName())
}

// String renders the problem as "[BOJ] 1000".
func (p Problem) String() string {
	return "[" + p.Platform.DisplayName() + "] " + p.Number
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
