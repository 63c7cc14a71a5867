package problem

import "strings"

// Flags is the state of the -b / -p command-line switches.
type Flags struct {
	BOJ         bool
	Programmers bool
}

// Any reports whether at least one platform flag is set.
func (f Flags) Any() bool {
	return f.BOJ || f.Programmers
}

// Platform collapses the flags to a single platform. Both set is checked
// before either is honoured.
func (f Flags) Platform() (Platform, error) {
	switch {
	case f.BOJ && f.Programmers:
		return None, &ResolutionError{Kind: ConflictingPlatformFlags}
	case f.BOJ:
		return BOJ, nil
	case f.Programmers:
		return Programmers, nil
	default:
		return None, &ResolutionError{Kind: PlatformRequired}
	}
}

// LooksLikeURL reports whether s should be parsed as a URL rather than a
// bare problem number.
func LooksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

// Resolve turns command-line input into a Problem. URL-shaped input is
// parsed for its platform; anything else needs exactly one platform flag.
func Resolve(input string, flags Flags) (Problem, error) {
	input = strings.TrimSpace(input)
	if LooksLikeURL(input) {
		if flags.Any() {
			return Problem{}, &ResolutionError{Kind: URLWithPlatformFlag, Input: input}
		}
		return ParseURL(input)
	}
	return ResolveFromFlags(input, flags)
}

// ResolveFromFlags builds a Problem from a bare number and the platform
// flags.
func ResolveFromFlags(number string, flags Flags) (Problem, error) {
	if LooksLikeURL(number) && flags.Any() {
		return Problem{}, &ResolutionError{Kind: URLWithPlatformFlag, Input: number}
	}
	if !isDigits(number) {
		return Problem{}, &ResolutionError{Kind: InvalidNumber, Input: number}
	}
	platform, err := flags.Platform()
	if err != nil {
		return Problem{}, err
	}
	return Problem{Platform: platform, Number: number}, nil
}
