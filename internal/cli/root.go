package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd creates the top-level "astral" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "astral",
		Short:         "Keyword-routed reference chatbot with optional LLM assist",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("profile", "p", "",
		"profile name or path to a profile YAML file")

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newProfilesCmd(app),
		newDataCmd(app),
	)

	return root
}

// profileFlag reads the persistent --profile flag off a flag set.
func profileFlag(flags *pflag.FlagSet) string {
	ref, _ := flags.GetString("profile")
	return ref
}
