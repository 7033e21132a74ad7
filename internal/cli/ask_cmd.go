package cli

import (
	"context"
	"fmt"

	"github.com/astraldesk/astral/internal/cli/formatter"
	"github.com/astraldesk/astral/internal/engine"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a single question and print the answer",
		Long: "Answer one question without entering the chat view. The reply is\n" +
			"resolved exactly as in chat: local reference data first, then the\n" +
			"completion service for out-of-domain questions.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := app.BuildOrchestrator(profileFlag(cmd.Flags()))
			if err != nil {
				return err
			}

			sess := engine.NewSession()

			var stopSpinner func()
			if app.IsInteractive() {
				stopSpinner = formatter.StartSpinner(cmd.OutOrStdout(), "Thinking...")
			}
			reply := orc.HandleMessage(context.Background(), sess, args[0])
			if stopSpinner != nil {
				stopSpinner()
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(reply))
			return nil
		},
	}
	return cmd
}
