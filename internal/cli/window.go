package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"edgarperiods/pkg/periods"
)

var windowCmd = &cobra.Command{
	Use:   "window <period>",
	Short: "Show the calendar window a period type covers",
	Long: `Compute the half-open UTC time range a period type covers relative
to a reference date (today unless --as-of is given).`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().String("as-of", "", "Reference date (YYYY-MM-DD, default today)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	p, err := periods.Parse(args[0])
	if err != nil {
		return err
	}

	ref := time.Now().UTC()
	if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
		ref, err = time.Parse("2006-01-02", asOf)
		if err != nil {
			return fmt.Errorf("parse --as-of date %q: %w", asOf, err)
		}
	}

	start, end := periods.Window(p, ref)

	fmt.Printf("Period:  %s\n", p)
	fmt.Printf("As of:   %s\n", ref.Format("2006-01-02"))
	fmt.Printf("Window:  %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	return nil
}
