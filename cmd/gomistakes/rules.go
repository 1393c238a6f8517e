package gomistakes

import (
	"github.com/spf13/cobra"

	"github.com/gomistakes/gomistakes/internal/report"
	"github.com/gomistakes/gomistakes/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the mistakes gomistakes looks for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.PrintRules(cmd.OutOrStdout(), rules.All())
		},
	}
	rootCmd.AddCommand(cmd)
}
