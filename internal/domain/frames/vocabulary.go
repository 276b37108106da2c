package frames

import "strings"

// Outcome is a named non-numeric result of a move connecting.
type Outcome string

// Known outcomes, in match priority order.
const (
	OutcomeLaunch    Outcome = "launch"
	OutcomeKnockdown Outcome = "knockdown"
	OutcomeStun      Outcome = "stun"
	OutcomeCrumple   Outcome = "crumple"
	OutcomeThrow     Outcome = "throw"
)

// vocabEntry binds an outcome to the lowercase substrings that signal it.
type vocabEntry struct {
	tag     Outcome
	needles []string
}

// outcomeVocabulary is the single source of truth for fuzzy outcome
// matching. Order matters: the first entry whose needle appears in the
// input wins. This is a deliberate lossy simplification of the notation
// grammar; keep it centralized so tests can enumerate it.
var outcomeVocabulary = []vocabEntry{
	{OutcomeLaunch, []string{"launch"}},
	{OutcomeKnockdown, []string{"knockdown", "knocks down", "knd", "kd"}},
	{OutcomeStun, []string{"stun"}},
	{OutcomeCrumple, []string{"crumple"}},
	{OutcomeThrow, []string{"throw"}},
}

// MatchOutcome tests raw text against the outcome vocabulary.
func MatchOutcome(s string) (Outcome, bool) {
	lower := strings.ToLower(s)
	for _, e := range outcomeVocabulary {
		for _, needle := range e.needles {
			if strings.Contains(lower, needle) {
				return e.tag, true
			}
		}
	}
	return "", false
}

// Outcomes returns the vocabulary tags in priority order, for tests and
// downstream consumers that need to enumerate the table.
func Outcomes() []Outcome {
	tags := make([]Outcome, len(outcomeVocabulary))
	for i, e := range outcomeVocabulary {
		tags[i] = e.tag
	}
	return tags
}

// PropertyVocabulary lists the note substrings that mark a move as a
// special-property tool (homing, heat engagers, armor, combo extenders).
// Lowercase; matched with strings.Contains against lowered notes.
var PropertyVocabulary = []string{
	"homing",
	"heat",
	"power crush",
	"power-crush",
	"tornado",
	"balcony",
}

// HasProperty reports whether notes mention any special property.
func HasProperty(notes string) bool {
	lower := strings.ToLower(notes)
	for _, p := range PropertyVocabulary {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
