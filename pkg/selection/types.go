// Package selection chooses which reporting periods to display for a
// financial statement from XBRL context metadata: document-date
// filtering, instant vs. duration handling, annual-period detection and
// fiscal-year alignment ranking.
package selection

import (
	"fmt"
	"strings"
	"time"
)

// PeriodKind distinguishes point-in-time periods from date ranges.
type PeriodKind string

const (
	KindInstant  PeriodKind = "instant"
	KindDuration PeriodKind = "duration"
)

// ReportingPeriod is one reporting period extracted from an XBRL
// document's context metadata. Date is set for instant periods; Start
// and End for durations.
type ReportingPeriod struct {
	Key   string
	Label string
	Kind  PeriodKind
	Date  time.Time
	Start time.Time
	End   time.Time
}

// StatementType selects the period shape a statement needs. Balance
// sheets are point-in-time snapshots and take instant periods; every
// other statement covers a date range and takes durations.
type StatementType string

const (
	BalanceSheet      StatementType = "BalanceSheet"
	IncomeStatement   StatementType = "IncomeStatement"
	CashFlowStatement StatementType = "CashFlowStatement"
)

// ParseStatementType resolves a case-insensitive statement name.
func ParseStatementType(s string) (StatementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "balancesheet", "balance-sheet":
		return BalanceSheet, nil
	case "incomestatement", "income-statement":
		return IncomeStatement, nil
	case "cashflowstatement", "cash-flow-statement", "cashflow":
		return CashFlowStatement, nil
	default:
		return "", fmt.Errorf("unknown statement type %q (valid values: %s, %s, %s)",
			s, BalanceSheet, IncomeStatement, CashFlowStatement)
	}
}

// EntityInfo carries the fiscal calendar hints used to rank annual
// periods. FiscalPeriod is the filing's fiscal period code ("FY" for
// annual reports, "Q1".."Q4" for quarters).
type EntityInfo struct {
	FiscalPeriod       string
	FiscalYearEndMonth time.Month
	FiscalYearEndDay   int
}

// Selected is one chosen period, most recent first in the slice
// returned by Select.
type Selected struct {
	Key   string
	Label string
}

// FactCounter answers how much data a period actually carries. It is
// supplied by the caller; the selector itself performs no I/O.
type FactCounter interface {
	// FactCount returns the number of facts reported for the period.
	FactCount(periodKey string) int

	// HasConcept reports whether the period has at least one fact for
	// the given concept.
	HasConcept(periodKey, concept string) bool
}
