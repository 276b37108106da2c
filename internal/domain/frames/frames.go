// Package frames converts raw frame-data text into typed semantic values.
//
// Conventions:
// - Parse is total: every input maps to exactly one Value, no errors.
// - The original raw text is preserved on the Value so a future range
//   policy change does not require re-parsing source data.
package frames

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the three parse outcomes.
type Kind int

const (
	// KindUnknown marks text that is empty or matches nothing.
	KindUnknown Kind = iota
	// KindNumeric marks a signed integer frame value.
	KindNumeric
	// KindOutcome marks a named outcome from the vocabulary.
	KindOutcome
)

// Value is the tagged result of parsing one raw frame field.
// Exactly one of Num (KindNumeric) or Tag (KindOutcome) is meaningful.
type Value struct {
	Kind Kind
	Num  int
	Tag  Outcome
	Raw  string
}

// Int returns the numeric frame value and whether the value is numeric.
func (v Value) Int() (int, bool) {
	return v.Num, v.Kind == KindNumeric
}

// Is reports whether the value is the given outcome.
func (v Value) Is(tag Outcome) bool {
	return v.Kind == KindOutcome && v.Tag == tag
}

// rangePattern matches range notation like "17-18", "i13~14" or "-13~-12";
// the first number is the representative value. Both ends may carry a sign,
// and the source sometimes suffixes an "f" unit.
var rangePattern = regexp.MustCompile(`^[iI]?([+-]?\d+)\s*[~-]\s*[iI]?[+-]?\d+[fF]?$`)

// Parse converts one raw frame field into a Value.
//
// Policy, in order:
//  1. Strip a leading "+" and an optional startup "i" prefix; if the rest
//     parses entirely as a signed integer the value is Numeric.
//  2. Range notation collapses to its first number (see package doc).
//  3. Otherwise the whole string is tested, case-insensitively, against
//     the outcome vocabulary; the first matching entry wins.
//  4. Anything else, including empty text, is Unknown.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Kind: KindUnknown, Raw: raw}
	}

	num := strings.TrimPrefix(s, "+")
	if len(num) > 1 && (num[0] == 'i' || num[0] == 'I') && isDigit(num[1]) {
		num = num[1:]
	}
	if n, err := strconv.Atoi(num); err == nil {
		return Value{Kind: KindNumeric, Num: n, Raw: raw}
	}
	if m := rangePattern.FindStringSubmatch(num); m != nil {
		if n, err := strconv.Atoi(strings.TrimPrefix(m[1], "+")); err == nil {
			return Value{Kind: KindNumeric, Num: n, Raw: raw}
		}
	}

	if tag, ok := MatchOutcome(s); ok {
		return Value{Kind: KindOutcome, Tag: tag, Raw: raw}
	}
	return Value{Kind: KindUnknown, Raw: raw}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
