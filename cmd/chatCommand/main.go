package chatCommand

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"github.com/t-kuni/vecho/infrastructure/ui/terminal"
	"go.uber.org/zap"
)

type ChatCommand struct {
	CobraCommand *cobra.Command
}

func NewChatCommand(chatFactory *chatFactory.ChatFactory) *ChatCommand {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long:  `Start an interactive chat session. Previous conversation history for the configured user is loaded on start.`,
		Args:  cobra.NoArgs,
		RunE:  RunChat(chatFactory),
	}

	return &ChatCommand{
		CobraCommand: cmd,
	}
}

// RunChat はルートコマンドからも使われます。サブコマンドなしで実行した場合も対話画面を起動します。
func RunChat(chatFactory *chatFactory.ChatFactory) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := chatFactory.Make()
		if err != nil {
			return err
		}
		defer env.Close()

		env.Logger.Info("starting chat session",
			zap.String("baseUrl", env.Config.Api.BaseURL),
			zap.String("mode", env.Config.Chat.Mode))

		screen := terminal.NewScreen()
		client := env.NewChatClient(screen)

		err = terminal.Run(cmd.Context(), client, screen, env.Config.SelectableModes(), env.Config.Chat.Mode)
		if err != nil {
			env.Logger.Error("chat session ended with error", zap.Error(err))
			return eris.Wrap(err, "chat session failed")
		}

		env.Logger.Info("chat session ended", zap.Int("messages", len(client.Messages())))
		return nil
	}
}
