package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: "Open a multi-turn chat with the active profile. Messages inside the\n" +
			"profile's domain are answered from the local reference data; anything\n" +
			"else goes to the completion service when an API key is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("chat needs an interactive terminal; use: astral ask \"<question>\"")
			}

			ref := profileFlag(cmd.Flags())
			if pick {
				chosen, err := pickProfile()
				if err != nil {
					return err
				}
				ref = chosen
			}

			orc, err := app.BuildOrchestrator(ref)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newChatModel(orc))
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a built-in profile interactively")

	return cmd
}
