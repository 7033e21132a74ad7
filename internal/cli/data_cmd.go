package cli

import (
	"fmt"

	"github.com/astraldesk/astral/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Show reference data availability for the active profile",
		Long: "List each category the active profile declares and whether its JSON\n" +
			"document loaded. Missing categories answer with a fixed unavailable\n" +
			"message instead of failing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.ResolveProfile(profileFlag(cmd.Flags()))
			if err != nil {
				return err
			}
			d := app.LoadDataset(p)

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDataStatus(p, d))
			return nil
		},
	}
	return cmd
}
