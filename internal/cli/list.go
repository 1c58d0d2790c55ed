package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"edgarperiods/pkg/periods"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List period types and their aliases",
	Long:  `List the recognized period types, optionally restricted to a named group.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("group", "g", "all", "Period group (standard, special, all)")
	listCmd.Flags().StringP("format", "f", "", "Output format (table, json, yaml; default from config)")
}

// listEntry is one row of list output.
type listEntry struct {
	Period  string   `json:"period" yaml:"period"`
	Group   string   `json:"group" yaml:"group"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	group, _ := cmd.Flags().GetString("group")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}

	members, err := groupMembers(group)
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(members))
	for _, p := range members {
		entries = append(entries, listEntry{
			Period:  string(p),
			Group:   groupLabel(p),
			Aliases: periods.Aliases(p),
		})
	}

	switch format {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "PERIOD\tGROUP\tALIASES\n")
		for _, e := range entries {
			aliases := strings.Join(e.Aliases, ", ")
			if aliases == "" {
				aliases = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Period, e.Group, aliases)
		}
		return w.Flush()
	case "json":
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Println(string(out))
		return nil
	case "yaml":
		out, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid formats: table, json, yaml)", format)
	}
}

func groupMembers(group string) ([]periods.PeriodType, error) {
	switch group {
	case "standard":
		return periods.StandardPeriods, nil
	case "special":
		return periods.SpecialPeriods, nil
	case "all":
		return periods.AllPeriods, nil
	default:
		return nil, fmt.Errorf("unknown period group %q (valid groups: standard, special, all)", group)
	}
}

func groupLabel(p periods.PeriodType) string {
	switch {
	case slices.Contains(periods.StandardPeriods, p):
		return "standard"
	case slices.Contains(periods.SpecialPeriods, p):
		return "special"
	default:
		return "-"
	}
}
