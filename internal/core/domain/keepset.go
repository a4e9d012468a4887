package domain

import (
	"bufio"
	"io"
	"slices"
	"strings"
)

// commentPrefix marks a keep list line as a comment.
const commentPrefix = "#"

// KeepSet is the set of base names the user wants to retain.
type KeepSet map[string]struct{}

// NewKeepSet builds a KeepSet from the given base names.
func NewKeepSet(names ...string) KeepSet {
	ks := make(KeepSet, len(names))
	for _, n := range names {
		ks[n] = struct{}{}
	}
	return ks
}

// ParseKeepList reads one base name per line. Lines are trimmed; blank lines
// and lines starting with "#" are skipped. Duplicates collapse.
func ParseKeepList(r io.Reader) (KeepSet, error) {
	ks := make(KeepSet)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		ks[line] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ks, nil
}

// Contains reports whether the base name is kept.
func (ks KeepSet) Contains(baseName string) bool {
	_, ok := ks[baseName]
	return ok
}

// Sorted returns the base names in lexical order.
func (ks KeepSet) Sorted() []string {
	names := make([]string, 0, len(ks))
	for n := range ks {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
