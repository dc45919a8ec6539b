package historyCommand

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"github.com/t-kuni/vecho/infrastructure/ui/plain"
	"go.uber.org/zap"
)

type HistoryCommand struct {
	CobraCommand *cobra.Command
}

func NewHistoryCommand(chatFactory *chatFactory.ChatFactory) *HistoryCommand {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "Print the conversation history",
		Long:         `Print the conversation history of the configured user, oldest first.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := chatFactory.Make()
			if err != nil {
				return err
			}
			defer env.Close()

			renderer := plain.NewRenderer(cmd.OutOrStdout())
			client := env.NewChatClient(renderer)

			result := client.FetchHistory(cmd.Context())
			if result.Err != nil {
				env.Logger.Error("failed to load chat history", zap.Error(result.Err))
				return eris.Wrap(result.Err, "failed to load history")
			}

			if client.ApplyHistory(result) == 0 {
				renderer.RenderPlaceholder()
			}
			return nil
		},
	}

	return &HistoryCommand{
		CobraCommand: cmd,
	}
}
