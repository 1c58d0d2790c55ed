package selection

import (
	"log/slog"
	"sort"
	"time"
)

// Annual durations run 300-400 days: long enough to reject quarters,
// short enough to reject multi-year cumulative periods.
const (
	minAnnualDays = 300
	maxAnnualDays = 400
)

// minFactsThreshold is the smallest fact count at which a period is
// considered to carry real data.
const minFactsThreshold = 10

// essentialConcepts lists the concepts a statement cannot render
// without. A period must report at least half of them to survive
// sufficiency filtering.
var essentialConcepts = map[StatementType][]string{
	IncomeStatement:   {"Revenue", "NetIncome", "OperatingIncome"},
	BalanceSheet:      {"Assets", "Liabilities", "Equity"},
	CashFlowStatement: {"OperatingCashFlow", "InvestingCashFlow", "FinancingCashFlow"},
}

// Selector chooses display periods for a statement. Zero values are
// not usable; construct with NewSelector.
type Selector struct {
	maxPeriods int
	facts      FactCounter
	logger     *slog.Logger
}

// NewSelector creates a selector returning at most maxPeriods periods.
// facts may be nil, which disables data-sufficiency filtering.
func NewSelector(maxPeriods int, facts FactCounter, logger *slog.Logger) *Selector {
	if maxPeriods <= 0 {
		maxPeriods = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{
		maxPeriods: maxPeriods,
		facts:      facts,
		logger:     logger,
	}
}

// Select returns up to maxPeriods (key, label) pairs for the given
// statement, most recent first. Selection degrades instead of failing:
// when a filter leaves nothing usable, the unfiltered candidates are
// returned and the condition is logged.
func (s *Selector) Select(periods []ReportingPeriod, stmt StatementType, docDate time.Time, entity EntityInfo) []Selected {
	if len(periods) == 0 {
		s.logger.Warn("no reporting periods available", "statement", string(stmt))
		return nil
	}

	filtered := filterByDocumentDate(periods, docDate)
	if len(filtered) == 0 {
		s.logger.Warn("document date filter removed every period",
			"statement", string(stmt),
			"document_date", docDate.Format("2006-01-02"),
		)
		return s.truncate(toSelected(periods))
	}

	var candidates []ReportingPeriod
	if stmt == BalanceSheet {
		candidates = selectInstants(filtered)
	} else {
		candidates = s.selectDurations(filtered, entity)
	}
	if len(candidates) == 0 {
		s.logger.Warn("no periods of the required kind",
			"statement", string(stmt),
			"periods", len(filtered),
		)
		return nil
	}
	if len(candidates) > s.maxPeriods {
		candidates = candidates[:s.maxPeriods]
	}

	if s.facts != nil {
		withData := s.filterSufficient(candidates, stmt)
		if len(withData) > 0 {
			return toSelected(withData)
		}
		s.logger.Warn("no period carries sufficient data, keeping candidates",
			"statement", string(stmt),
		)
	}

	return toSelected(candidates)
}

// filterByDocumentDate keeps only periods ending on or before the
// document date. This prevents taxonomy periods dated years past the
// filing from being selected. A zero document date or a period with no
// parseable date passes through.
func filterByDocumentDate(periods []ReportingPeriod, docDate time.Time) []ReportingPeriod {
	if docDate.IsZero() {
		return periods
	}

	var out []ReportingPeriod
	for _, p := range periods {
		switch p.Kind {
		case KindInstant:
			if p.Date.IsZero() || !p.Date.After(docDate) {
				out = append(out, p)
			}
		case KindDuration:
			if p.End.IsZero() || !p.End.After(docDate) {
				out = append(out, p)
			}
		default:
			out = append(out, p)
		}
	}
	return out
}

// selectInstants returns instant periods most recent first.
func selectInstants(periods []ReportingPeriod) []ReportingPeriod {
	var instants []ReportingPeriod
	for _, p := range periods {
		if p.Kind == KindInstant {
			instants = append(instants, p)
		}
	}
	sortByDate(instants)
	return instants
}

// selectDurations returns duration periods ranked for display. Annual
// filings prefer truly-annual periods ordered by fiscal alignment;
// everything else falls back to most recent first.
func (s *Selector) selectDurations(periods []ReportingPeriod, entity EntityInfo) []ReportingPeriod {
	var durations []ReportingPeriod
	for _, p := range periods {
		if p.Kind == KindDuration {
			durations = append(durations, p)
		}
	}
	if len(durations) == 0 {
		return nil
	}

	if entity.FiscalPeriod == "FY" {
		var annual []ReportingPeriod
		for _, p := range durations {
			if isAnnual(p) {
				annual = append(annual, p)
			}
		}
		if len(annual) > 0 {
			rankByFiscalAlignment(annual, entity.FiscalYearEndMonth, entity.FiscalYearEndDay)
			return annual
		}
		s.logger.Debug("annual filing but no annual-length periods found",
			"durations", len(durations),
		)
	}

	sortByDate(durations)
	return durations
}

// isAnnual reports whether a duration spans roughly one year, allowing
// for leap years and shifted fiscal year ends.
func isAnnual(p ReportingPeriod) bool {
	if p.Start.IsZero() || p.End.IsZero() {
		return false
	}
	days := int(p.End.Sub(p.Start).Hours() / 24)
	return days > minAnnualDays && days <= maxAnnualDays
}

// rankByFiscalAlignment orders periods by how well their end date
// matches the entity's fiscal year end, breaking ties with recency.
// Without fiscal info it degrades to plain date ordering.
func rankByFiscalAlignment(periods []ReportingPeriod, fiscalMonth time.Month, fiscalDay int) {
	if fiscalMonth == 0 || fiscalDay == 0 {
		sortByDate(periods)
		return
	}

	sort.SliceStable(periods, func(i, j int) bool {
		si := alignmentScore(periods[i].End, fiscalMonth, fiscalDay)
		sj := alignmentScore(periods[j].End, fiscalMonth, fiscalDay)
		if si != sj {
			return si > sj
		}
		return periods[i].End.After(periods[j].End)
	})
}

// alignmentScore grades an end date against the fiscal year end: exact
// match 100, same month within 15 days 75, adjacent month 50, anything
// else 25.
func alignmentScore(end time.Time, fiscalMonth time.Month, fiscalDay int) int {
	switch {
	case end.Month() == fiscalMonth && end.Day() == fiscalDay:
		return 100
	case end.Month() == fiscalMonth && abs(end.Day()-fiscalDay) <= 15:
		return 75
	case abs(int(end.Month())-int(fiscalMonth)) <= 1:
		return 50
	default:
		return 25
	}
}

// filterSufficient drops candidates whose fact coverage is too thin to
// render the statement.
func (s *Selector) filterSufficient(candidates []ReportingPeriod, stmt StatementType) []ReportingPeriod {
	required := essentialConcepts[stmt]
	minRequired := len(required) / 2
	if minRequired < 1 {
		minRequired = 1
	}

	var out []ReportingPeriod
	for _, p := range candidates {
		count := s.facts.FactCount(p.Key)
		if count < minFactsThreshold {
			s.logger.Debug("period has too few facts",
				"period", p.Label,
				"facts", count,
			)
			continue
		}

		present := 0
		for _, concept := range required {
			if s.facts.HasConcept(p.Key, concept) {
				present++
			}
		}
		if present < minRequired {
			s.logger.Debug("period lacks essential concepts",
				"period", p.Label,
				"present", present,
				"required", len(required),
			)
			continue
		}

		out = append(out, p)
	}
	return out
}

// sortByDate orders periods most recent first, using the instant date
// or the duration end date. Periods without dates sort last.
func sortByDate(periods []ReportingPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		return sortKey(periods[i]).After(sortKey(periods[j]))
	})
}

func sortKey(p ReportingPeriod) time.Time {
	if p.Kind == KindInstant {
		return p.Date
	}
	return p.End
}

func (s *Selector) truncate(sel []Selected) []Selected {
	if len(sel) > s.maxPeriods {
		return sel[:s.maxPeriods]
	}
	return sel
}

func toSelected(periods []ReportingPeriod) []Selected {
	out := make([]Selected, len(periods))
	for i, p := range periods {
		out[i] = Selected{Key: p.Key, Label: p.Label}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
