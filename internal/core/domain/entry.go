package domain

import "strings"

// nameSeparator separates the identity, version and architecture parts of an
// installed extension directory name.
const nameSeparator = "-"

// Entry is an installed extension decoded from its directory name.
type Entry struct {
	// RawName is the literal directory name, e.g. "ms-python.python-2021.5.842923320-x64".
	RawName string
	// BaseName is the publisher.extension identity. It is never empty.
	BaseName string
	// Version is the version part of the name, empty when the name carries none.
	Version string
	// Arch is the optional trailing architecture qualifier.
	Arch string
}

// Decode splits a raw directory name into identity, version and architecture.
//
// The base name runs up to the first dash-separated segment, after the first,
// that begins with a decimal digit. Publishers or extension names containing a
// digit-leading segment are therefore cut short; this mirrors how the editor
// itself names its install directories and is not corrected here.
// Decode never fails: names without a version, or whose identity part would
// be empty, decode to BaseName == RawName.
func Decode(rawName string) Entry {
	base := baseName(rawName)
	if base == "" {
		return Entry{RawName: rawName, BaseName: rawName}
	}
	version, arch := versionInfo(rawName[len(base):])

	return Entry{
		RawName:  rawName,
		BaseName: base,
		Version:  version,
		Arch:     arch,
	}
}

func baseName(rawName string) string {
	parts := strings.Split(rawName, nameSeparator)
	if len(parts) <= 1 {
		return rawName
	}

	n := 1
	for _, part := range parts[1:] {
		if startsWithDigit(part) {
			break
		}
		n++
	}

	return strings.Join(parts[:n], nameSeparator)
}

func versionInfo(suffix string) (version, arch string) {
	remainder := strings.TrimPrefix(suffix, nameSeparator)
	if remainder == "" {
		return "", ""
	}

	parts := strings.Split(remainder, nameSeparator)
	last := parts[len(parts)-1]
	if len(parts) > 1 && !startsWithDigit(last) {
		return strings.Join(parts[:len(parts)-1], nameSeparator), last
	}

	return remainder, ""
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
