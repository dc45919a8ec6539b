package clearCommand

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"go.uber.org/zap"
)

type ClearCommand struct {
	CobraCommand *cobra.Command
}

func NewClearCommand(chatFactory *chatFactory.ChatFactory) *ClearCommand {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:          "clear",
		Short:        "Delete all chats of the configured user",
		Long:         `Delete all chats of the configured user on the server. Asks for confirmation unless --yes is given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := chatFactory.Make()
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			if !yesFlag {
				fmt.Fprintf(out, "Delete all chats of user %d? [y/N]: ", env.Session.UserID)
				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && answer == "" {
					return eris.Wrap(err, "failed to read confirmation")
				}
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			result, err := env.Api.DeleteChats(cmd.Context(), env.Session.UserID)
			if err != nil {
				return eris.Wrap(err, "failed to delete chats")
			}

			env.Logger.Info("chats deleted", zap.Int("deletedCount", result.DeletedCount))
			fmt.Fprintln(out, result.Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")

	return &ClearCommand{
		CobraCommand: cmd,
	}
}
