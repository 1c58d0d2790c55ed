package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"edgarperiods/pkg/selection"
)

var selectCmd = &cobra.Command{
	Use:   "select <periods-file>",
	Short: "Select display periods for a statement",
	Long: `Select which reporting periods to display for a financial statement.
The periods file is a YAML or JSON document listing instant and duration
periods, optionally with a document date and fiscal calendar hints;
flags override values from the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().StringP("statement", "s", "IncomeStatement", "Statement type (BalanceSheet, IncomeStatement, CashFlowStatement)")
	selectCmd.Flags().String("document-date", "", "Document date override (YYYY-MM-DD)")
	selectCmd.Flags().IntP("max", "n", 0, "Maximum periods to select (default from config)")
	selectCmd.Flags().String("fiscal-period", "", "Fiscal period override (e.g. FY, Q3)")
	selectCmd.Flags().String("fiscal-year-end", "", "Fiscal year end override (MM-DD)")
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	stmtName, _ := cmd.Flags().GetString("statement")
	stmt, err := selection.ParseStatementType(stmtName)
	if err != nil {
		return err
	}

	set, err := selection.LoadPeriodSet(args[0])
	if err != nil {
		return err
	}

	docDate := set.DocumentDate
	if override, _ := cmd.Flags().GetString("document-date"); override != "" {
		docDate, err = time.Parse("2006-01-02", override)
		if err != nil {
			return fmt.Errorf("parse --document-date %q: %w", override, err)
		}
	}

	entity := set.Entity
	if fp, _ := cmd.Flags().GetString("fiscal-period"); fp != "" {
		entity.FiscalPeriod = fp
	}
	if fye, _ := cmd.Flags().GetString("fiscal-year-end"); fye != "" {
		entity.FiscalYearEndMonth, entity.FiscalYearEndDay, err = parseFiscalYearEnd(fye)
		if err != nil {
			return err
		}
	}

	maxPeriods, _ := cmd.Flags().GetInt("max")
	if maxPeriods <= 0 {
		maxPeriods = cfg.Selection.MaxPeriods
	}

	selector := selection.NewSelector(maxPeriods, nil, logger)
	selected := selector.Select(set.Periods, stmt, docDate, entity)

	if len(selected) == 0 {
		fmt.Println("No periods selected.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "KEY\tLABEL\n")
	for _, s := range selected {
		fmt.Fprintf(w, "%s\t%s\n", s.Key, s.Label)
	}
	return w.Flush()
}

// parseFiscalYearEnd parses an "MM-DD" fiscal year end.
func parseFiscalYearEnd(s string) (time.Month, int, error) {
	d, err := time.Parse("01-02", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse --fiscal-year-end %q (expected MM-DD): %w", s, err)
	}
	return d.Month(), d.Day(), nil
}
