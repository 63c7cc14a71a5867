package problem

// Platform identifies an online judge.
type Platform string

const (
	None        Platform = ""
	BOJ         Platform = "boj"
	Programmers Platform = "programmers"
)

// Platforms lists every supported judge in display order.
var Platforms = []Platform{BOJ, Programmers}

// FolderName returns the directory segment solutions for p live under.
func (p Platform) FolderName() string {
	switch p {
	case BOJ:
		return "BOJ"
	case Programmers:
		return "Programmers"
	default:
		return ""
	}
}

// DisplayName returns the short name used in commit messages.
func (p Platform) DisplayName() string {
	switch p {
	case BOJ:
		return "BOJ"
	case Programmers:
		return "Programmers"
	default:
		return ""
	}
}

// ProblemURL builds the canonical problem page for number.
func (p Platform) ProblemURL(number string) string {
	switch p {
	case BOJ:
		return "https://acmicpc.net/problem/" + number
	case Programmers:
		return "https://school.programmers.co.kr/learn/courses/30/lessons/" + number
	default:
		return ""
	}
}

// Flag returns the short command-line flag that selects p.
func (p Platform) Flag() string {
	switch p {
	case BOJ:
		return "-b"
	case Programmers:
		return "-p"
	default:
		return ""
	}
}

// Valid reports whether p is one of the supported judges.
func (p Platform) Valid() bool {
	return p == BOJ || p == Programmers
}
