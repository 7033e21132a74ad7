package cli

import (
	"fmt"

	"github.com/astraldesk/astral/internal/cli/formatter"
	"github.com/astraldesk/astral/internal/profile"
	"github.com/spf13/cobra"
)

func newProfilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the built-in profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var profiles []*profile.Profile
			for _, name := range profile.BuiltinNames() {
				p, err := profile.Builtin(name)
				if err != nil {
					return err
				}
				profiles = append(profiles, p)
			}

			active := profileFlag(cmd.Flags())
			if active == "" {
				active = app.Cfg.Profile
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfileList(profiles, active))
			return nil
		},
	}
	return cmd
}
