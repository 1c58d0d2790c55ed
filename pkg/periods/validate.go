package periods

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestionThreshold is the maximum edit distance at which a close
// match is still offered in the error message. Anything further away
// yields the full valid set instead of a misleading guess.
const suggestionThreshold = 2

// InvalidPeriodError reports a period identifier that matched neither a
// canonical value nor a registered alias. Suggestion is empty when no
// candidate was within the edit-distance threshold.
type InvalidPeriodError struct {
	Input      string
	Suggestion PeriodType
}

func (e *InvalidPeriodError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid period type %q: did you mean %q?", e.Input, string(e.Suggestion))
	}
	return fmt.Sprintf("invalid period type %q (valid values: %s)", e.Input, joinPeriods(AllPeriods))
}

// Parse normalizes input into a canonical PeriodType. Already-canonical
// values pass through unchanged; anything else is trimmed, lowercased
// and resolved through the alias table. Invalid input fails with an
// *InvalidPeriodError carrying the closest valid match when one is
// within suggestionThreshold edits.
func Parse(input string) (PeriodType, error) {
	if p := PeriodType(input); p.IsValid() {
		return p, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	if p := PeriodType(normalized); p.IsValid() {
		return p, nil
	}
	if p, ok := aliases[normalized]; ok {
		return p, nil
	}

	return "", &InvalidPeriodError{Input: input, Suggestion: closestMatch(normalized)}
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level defaults.
func MustParse(input string) PeriodType {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// closestMatch returns the canonical period of the candidate (literal
// or alias key) nearest to the normalized input, or "" when nothing is
// within suggestionThreshold. Equidistant candidates resolve to the
// lexicographically smallest string so suggestions stay deterministic.
func closestMatch(normalized string) PeriodType {
	if normalized == "" {
		return ""
	}

	// candidates() is sorted, so the first hit at a given distance is
	// already the lexicographically smallest tie-break winner.
	best := suggestionThreshold + 1
	bestKey := ""
	for _, candidate := range candidates() {
		if d := levenshtein.ComputeDistance(normalized, candidate); d < best {
			best = d
			bestKey = candidate
		}
	}
	if best > suggestionThreshold {
		return ""
	}
	return resolve(bestKey)
}

// candidates returns every accepted spelling (canonical literals plus
// alias keys), sorted.
func candidates() []string {
	out := make([]string, 0, len(AllPeriods)+len(aliases))
	for _, p := range AllPeriods {
		out = append(out, string(p))
	}
	for alias := range aliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// resolve maps an accepted spelling back to its canonical period.
func resolve(candidate string) PeriodType {
	if p := PeriodType(candidate); p.IsValid() {
		return p
	}
	return aliases[candidate]
}

func joinPeriods(ps []PeriodType) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
