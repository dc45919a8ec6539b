package sendCommand

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"github.com/t-kuni/vecho/infrastructure/ui/plain"
)

type SendCommand struct {
	CobraCommand *cobra.Command
}

func NewSendCommand(chatFactory *chatFactory.ChatFactory) *SendCommand {
	var modeFlag string

	cmd := &cobra.Command{
		Use:          "send <message...>",
		Short:        "Send a single message and print the reply",
		Long:         `Send a single message to the chat API and print both the message and the reply.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := chatFactory.Make()
			if err != nil {
				return err
			}
			defer env.Close()

			mode := env.Config.Chat.Mode
			if modeFlag != "" {
				mode = modeFlag
			}

			client := env.NewChatClient(plain.NewRenderer(cmd.OutOrStdout()))
			if !client.SendMessage(cmd.Context(), strings.Join(args, " "), mode) {
				env.Logger.Debug("blank message ignored")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Chat mode sent to the server (defaults to chat.mode)")

	return &SendCommand{
		CobraCommand: cmd,
	}
}
