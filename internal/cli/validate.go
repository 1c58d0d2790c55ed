package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"edgarperiods/pkg/periods"
)

var validateCmd = &cobra.Command{
	Use:   "validate <period>",
	Short: "Normalize a period identifier to its canonical value",
	Long: `Validate a period type identifier and print its canonical form.
Accepts canonical values (annual, quarterly, monthly, ttm, ytd) in any
case as well as registered aliases such as "yearly" or "quarter". A
near-miss is rejected with a suggestion for the closest valid value.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	p, err := periods.Parse(args[0])
	if err != nil {
		return err
	}

	fmt.Println(p)
	return nil
}
