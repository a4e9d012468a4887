package domain

import (
	"math/big"
	"strings"
)

// versionSeparator separates the segments of a version string.
const versionSeparator = "."

// CompareVersions orders two version strings and returns -1, 0 or 1.
//
// Segments are compared position by position. When both segments are integers
// they compare numerically, otherwise they compare as plain strings, so
// pre-release tags such as "beta" still produce a stable order. Missing
// trailing segments count as "0", which makes "1.2" equal to "1.2.0".
// An empty version is lower than any non-empty one.
func CompareVersions(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}

	as := strings.Split(a, versionSeparator)
	bs := strings.Split(b, versionSeparator)

	for i := range max(len(as), len(bs)) {
		if c := compareSegments(segmentAt(as, i), segmentAt(bs, i)); c != 0 {
			return c
		}
	}

	return 0
}

func segmentAt(segments []string, i int) string {
	if i < len(segments) {
		return segments[i]
	}
	return "0"
}

func compareSegments(a, b string) int {
	na, aok := parseInteger(a)
	nb, bok := parseInteger(b)
	if aok && bok {
		return na.Cmp(nb)
	}
	return strings.Compare(a, b)
}

// parseInteger accepts an optionally signed decimal integer with surrounding
// whitespace and single underscores between digits, e.g. " +1_000 ".
func parseInteger(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)

	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if body == "" {
		return nil, false
	}

	afterDigit := false
	for i := range len(body) {
		switch c := body[i]; {
		case c >= '0' && c <= '9':
			afterDigit = true
		case c == '_' && afterDigit && i+1 < len(body):
			afterDigit = false
		default:
			return nil, false
		}
	}

	return new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
}
