package selection_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgarperiods/pkg/selection"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func duration(key, start, end string) selection.ReportingPeriod {
	return selection.ReportingPeriod{
		Key:   key,
		Label: key,
		Kind:  selection.KindDuration,
		Start: date(start),
		End:   date(end),
	}
}

func instant(key, at string) selection.ReportingPeriod {
	return selection.ReportingPeriod{
		Key:   key,
		Label: key,
		Kind:  selection.KindInstant,
		Date:  date(at),
	}
}

func keys(sel []selection.Selected) []string {
	out := make([]string, len(sel))
	for i, s := range sel {
		out[i] = s.Key
	}
	return out
}

func TestSelect_BalanceSheetUsesInstants(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		instant("instant_2022-12-31", "2022-12-31"),
		duration("duration_2023-01-01_2023-12-31", "2023-01-01", "2023-12-31"),
		instant("instant_2023-12-31", "2023-12-31"),
	}

	got := s.Select(periods, selection.BalanceSheet, date("2024-02-15"), selection.EntityInfo{})
	assert.Equal(t, []string{"instant_2023-12-31", "instant_2022-12-31"}, keys(got))
}

func TestSelect_AnnualFilingPrefersAnnualDurations(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2021", "2021-01-01", "2021-12-31"),
		duration("q3-2023", "2023-07-01", "2023-09-30"),
		duration("fy2023", "2023-01-01", "2023-12-31"),
		duration("fy2022", "2022-01-01", "2022-12-31"),
		instant("instant_2023-12-31", "2023-12-31"),
	}
	entity := selection.EntityInfo{
		FiscalPeriod:       "FY",
		FiscalYearEndMonth: time.December,
		FiscalYearEndDay:   31,
	}

	got := s.Select(periods, selection.IncomeStatement, date("2024-02-15"), entity)
	assert.Equal(t, []string{"fy2023", "fy2022", "fy2021"}, keys(got))
}

func TestSelect_DocumentDateExcludesFuturePeriods(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2023", "2023-01-01", "2023-12-31"),
		duration("fy2026", "2026-01-01", "2026-12-31"),
	}
	entity := selection.EntityInfo{FiscalPeriod: "FY", FiscalYearEndMonth: time.December, FiscalYearEndDay: 31}

	got := s.Select(periods, selection.IncomeStatement, date("2024-02-15"), entity)
	assert.Equal(t, []string{"fy2023"}, keys(got))
}

func TestSelect_DocumentDateRemovingEverythingFallsBack(t *testing.T) {
	s := selection.NewSelector(2, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2023", "2023-01-01", "2023-12-31"),
		duration("fy2022", "2022-01-01", "2022-12-31"),
		duration("fy2021", "2021-01-01", "2021-12-31"),
	}

	got := s.Select(periods, selection.IncomeStatement, date("2019-06-30"), selection.EntityInfo{})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"fy2023", "fy2022"}, keys(got))
}

func TestSelect_QuarterlyFilingUsesMostRecentDurations(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2022", "2022-01-01", "2022-12-31"),
		duration("q3-2023", "2023-07-01", "2023-09-30"),
		duration("q2-2023", "2023-04-01", "2023-06-30"),
	}
	entity := selection.EntityInfo{FiscalPeriod: "Q3"}

	got := s.Select(periods, selection.CashFlowStatement, date("2023-11-01"), entity)
	assert.Equal(t, []string{"q3-2023", "q2-2023", "fy2022"}, keys(got))
}

func TestSelect_FiscalAlignmentOutranksRecency(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	// June fiscal year end: the 2022-07-01..2023-06-30 period matches
	// exactly and outranks the more recent calendar-year period.
	periods := []selection.ReportingPeriod{
		duration("cal2023", "2023-01-01", "2023-12-31"),
		duration("fye-jun-2023", "2022-07-01", "2023-06-30"),
	}
	entity := selection.EntityInfo{
		FiscalPeriod:       "FY",
		FiscalYearEndMonth: time.June,
		FiscalYearEndDay:   30,
	}

	got := s.Select(periods, selection.IncomeStatement, date("2024-01-31"), entity)
	assert.Equal(t, []string{"fye-jun-2023", "cal2023"}, keys(got))
}

func TestSelect_AnnualFilingWithoutAnnualPeriodsFallsBack(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("q1-2023", "2023-01-01", "2023-03-31"),
		duration("q2-2023", "2023-04-01", "2023-06-30"),
	}
	entity := selection.EntityInfo{FiscalPeriod: "FY", FiscalYearEndMonth: time.December, FiscalYearEndDay: 31}

	got := s.Select(periods, selection.IncomeStatement, date("2023-08-01"), entity)
	assert.Equal(t, []string{"q2-2023", "q1-2023"}, keys(got))
}

func TestSelect_MaxPeriodsCapsResult(t *testing.T) {
	s := selection.NewSelector(2, nil, testLogger())

	periods := []selection.ReportingPeriod{
		instant("i1", "2023-12-31"),
		instant("i2", "2022-12-31"),
		instant("i3", "2021-12-31"),
	}

	got := s.Select(periods, selection.BalanceSheet, date("2024-02-01"), selection.EntityInfo{})
	assert.Equal(t, []string{"i1", "i2"}, keys(got))
}

func TestSelect_EmptyInput(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())
	got := s.Select(nil, selection.BalanceSheet, date("2024-02-01"), selection.EntityInfo{})
	assert.Empty(t, got)
}

func TestSelect_NoPeriodsOfRequiredKind(t *testing.T) {
	s := selection.NewSelector(4, nil, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2023", "2023-01-01", "2023-12-31"),
	}

	got := s.Select(periods, selection.BalanceSheet, date("2024-02-01"), selection.EntityInfo{})
	assert.Empty(t, got)
}

// fakeFactCounter serves canned fact counts and concept presence.
type fakeFactCounter struct {
	counts   map[string]int
	concepts map[string][]string
}

func (f *fakeFactCounter) FactCount(key string) int {
	return f.counts[key]
}

func (f *fakeFactCounter) HasConcept(key, concept string) bool {
	for _, c := range f.concepts[key] {
		if c == concept {
			return true
		}
	}
	return false
}

func TestSelect_SufficiencyDropsThinPeriods(t *testing.T) {
	facts := &fakeFactCounter{
		counts: map[string]int{
			"fy2023": 120,
			"fy2022": 3, // below the fact threshold
			"fy2021": 80,
		},
		concepts: map[string][]string{
			"fy2023": {"Revenue", "NetIncome"},
			"fy2021": {"Revenue"},
		},
	}
	s := selection.NewSelector(4, facts, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2023", "2023-01-01", "2023-12-31"),
		duration("fy2022", "2022-01-01", "2022-12-31"),
		duration("fy2021", "2021-01-01", "2021-12-31"),
	}
	entity := selection.EntityInfo{FiscalPeriod: "FY", FiscalYearEndMonth: time.December, FiscalYearEndDay: 31}

	got := s.Select(periods, selection.IncomeStatement, date("2024-02-15"), entity)
	assert.Equal(t, []string{"fy2023", "fy2021"}, keys(got))
}

func TestSelect_AllInsufficientKeepsCandidates(t *testing.T) {
	facts := &fakeFactCounter{
		counts: map[string]int{"fy2023": 1, "fy2022": 2},
	}
	s := selection.NewSelector(4, facts, testLogger())

	periods := []selection.ReportingPeriod{
		duration("fy2023", "2023-01-01", "2023-12-31"),
		duration("fy2022", "2022-01-01", "2022-12-31"),
	}
	entity := selection.EntityInfo{FiscalPeriod: "FY", FiscalYearEndMonth: time.December, FiscalYearEndDay: 31}

	got := s.Select(periods, selection.IncomeStatement, date("2024-02-15"), entity)
	assert.Equal(t, []string{"fy2023", "fy2022"}, keys(got))
}

func TestParseStatementType(t *testing.T) {
	tests := []struct {
		input string
		want  selection.StatementType
	}{
		{"BalanceSheet", selection.BalanceSheet},
		{"balancesheet", selection.BalanceSheet},
		{"income-statement", selection.IncomeStatement},
		{"IncomeStatement", selection.IncomeStatement},
		{"cashflow", selection.CashFlowStatement},
		{"CashFlowStatement", selection.CashFlowStatement},
	}
	for _, tt := range tests {
		got, err := selection.ParseStatementType(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := selection.ParseStatementType("ledger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BalanceSheet")
}
