package problem

import "fmt"

// Kind classifies a resolution failure.
type Kind int

const (
	UnsupportedURL Kind = iota + 1
	PlatformRequired
	ConflictingPlatformFlags
	URLWithPlatformFlag
	InvalidNumber
)

func (k Kind) String() string {
	switch k {
	case UnsupportedURL:
		return "unsupported URL"
	case PlatformRequired:
		return "platform required"
	case ConflictingPlatformFlags:
		return "conflicting platform flags"
	case URLWithPlatformFlag:
		return "URL with platform flag"
	case InvalidNumber:
		return "invalid problem number"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ResolutionError reports why an input could not become a Problem.
type ResolutionError struct {
	Kind  Kind
	Input string
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case UnsupportedURL:
		return fmt.Sprintf("unsupported URL %q (supported: acmicpc.net, boj.kr, school.programmers.co.kr)", e.Input)
	case PlatformRequired:
		return "platform not specified: use -b for BOJ or -p for Programmers"
	case ConflictingPlatformFlags:
		return "cannot use both -b and -p: choose one platform"
	case URLWithPlatformFlag:
		return "URL already specifies the platform: do not combine it with -b or -p"
	case InvalidNumber:
		return fmt.Sprintf("invalid problem number %q: must be a positive integer", e.Input)
	default:
		return e.Kind.String()
	}
}

// Is matches any *ResolutionError of the same Kind, so the sentinels below
// work with errors.Is regardless of Input.
func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrUnsupportedURL           = &ResolutionError{Kind: UnsupportedURL}
	ErrPlatformRequired         = &ResolutionError{Kind: PlatformRequired}
	ErrConflictingPlatformFlags = &ResolutionError{Kind: ConflictingPlatformFlags}
	ErrURLWithPlatformFlag      = &ResolutionError{Kind: URLWithPlatformFlag}
	ErrInvalidNumber            = &ResolutionError{Kind: InvalidNumber}
)
