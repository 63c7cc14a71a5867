package problem

import (
	"slices"
	"strings"
)

type urlPattern struct {
	hosts    []string
	platform Platform
	extract  func(path string) string
}

// Patterns are tried in order; the first host match decides.
var urlPatterns = []urlPattern{
	{
		hosts:    []string{"acmicpc.net"},
		platform: BOJ,
		extract: func(path string) string {
			rest, ok := strings.CutPrefix(path, "/problem/")
			if !ok {
				return ""
			}
			number, _, _ := strings.Cut(rest, "/")
			return number
		},
	},
	{
		hosts:    []string{"boj.kr"},
		platform: BOJ,
		extract: func(path string) string {
			number := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
			if strings.Contains(number, "/") {
				return ""
			}
			return number
		},
	},
	{
		hosts:    []string{"programmers.co.kr", "school.programmers.co.kr"},
		platform: Programmers,
		extract: func(path string) string {
			_, number, ok := strings.Cut(path, "/lessons/")
			if !ok {
				return ""
			}
			return number
		},
	},
}

// ParseURL extracts a Problem from a BOJ or Programmers problem URL. The
// string is never fetched.
func ParseURL(raw string) (Problem, error) {
	host, path := splitURL(strings.TrimSpace(raw))
	for _, pat := range urlPatterns {
		if !slices.Contains(pat.hosts, host) {
			continue
		}
		number := pat.extract(path)
		if !isDigits(number) {
			break
		}
		return Problem{Platform: pat.platform, Number: number}, nil
	}
	return Problem{}, &ResolutionError{Kind: UnsupportedURL, Input: raw}
}

// splitURL drops the scheme, a leading "www.", the query string and the
// fragment, and returns the lower-cased host and the remaining path.
func splitURL(raw string) (host, path string) {
	s := raw
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+len("://"):]
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	host, path, _ = strings.Cut(s, "/")
	path = "/" + path
	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	return host, path
}
