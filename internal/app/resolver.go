package service

import (
	"fmt"
	"strings"
)

// nameTable maps lowercase display names and common aliases to canonical
// source identifiers. Names not listed here fall through to the slug
// transform, which covers the regular cases ("Devil Jin" -> "devil-jin").
var nameTable = map[string]string{
	"sergei dragunov":     "dragunov",
	"drag":                "dragunov",
	"kazuya mishima":      "kazuya",
	"kaz":                 "kazuya",
	"jin kazama":          "jin",
	"marshall law":        "law",
	"dvj":                 "devil-jin",
	"jack":                "jack-8",
	"king ii":             "king",
	"ling xiaoyu":         "xiaoyu",
	"emilie de rochefort": "lili",
}

// Resolve maps a display name to a canonical character id: table lookup
// first, then a deterministic slug (lowercase, spaces to hyphens, strip
// anything not alphanumeric or hyphen). An id the source does not know is
// only detected downstream, at fetch time; this function cannot tell a bad
// mapping from a valid-but-unknown id and does not pretend to.
func Resolve(displayName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(displayName))
	if id, ok := nameTable[name]; ok {
		return id, nil
	}

	var b strings.Builder
	for _, r := range strings.ReplaceAll(name, " ", "-") {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrResolution, displayName)
	}
	return slug, nil
}
