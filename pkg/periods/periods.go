// Package periods defines the closed vocabulary of financial reporting
// period identifiers and the validation that normalizes caller-supplied
// input into one of them.
package periods

import "sort"

// PeriodType identifies a financial reporting period length.
type PeriodType string

const (
	Annual    PeriodType = "annual"
	Quarterly PeriodType = "quarterly"
	Monthly   PeriodType = "monthly"
	TTM       PeriodType = "ttm" // trailing twelve months
	YTD       PeriodType = "ytd" // year to date
)

// Named period groups for iteration. StandardPeriods covers the periods
// most filers report on; SpecialPeriods covers rolling and partial
// windows; AllPeriods is the full vocabulary.
var (
	StandardPeriods = []PeriodType{Annual, Quarterly}
	SpecialPeriods  = []PeriodType{TTM, YTD}
	AllPeriods      = []PeriodType{Annual, Quarterly, Monthly, TTM, YTD}
)

// aliases maps accepted alternate spellings to their canonical period.
// Keys are stored pre-normalized (lowercase, no surrounding space). No
// key may shadow a canonical literal, and each key maps to exactly one
// period.
var aliases = map[string]PeriodType{
	"yearly":                 Annual,
	"annually":               Annual,
	"year":                   Annual,
	"quarter":                Quarterly,
	"quarters":               Quarterly,
	"month":                  Monthly,
	"months":                 Monthly,
	"trailing-twelve-months": TTM,
	"ltm":                    TTM,
	"year-to-date":           YTD,
}

func (p PeriodType) String() string { return string(p) }

// IsValid reports whether p is one of the canonical period values.
func (p PeriodType) IsValid() bool {
	switch p {
	case Annual, Quarterly, Monthly, TTM, YTD:
		return true
	default:
		return false
	}
}

// Aliases returns the alternate spellings accepted for p, sorted.
func Aliases(p PeriodType) []string {
	var out []string
	for alias, target := range aliases {
		if target == p {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
