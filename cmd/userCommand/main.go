package userCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"go.uber.org/zap"
)

type UserCommand struct {
	CobraCommand *cobra.Command
}

func NewUserCommand(chatFactory *chatFactory.ChatFactory) *UserCommand {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users on the chat server",
	}

	cmd.AddCommand(newCreateCommand(chatFactory))

	return &UserCommand{
		CobraCommand: cmd,
	}
}

func newCreateCommand(chatFactory *chatFactory.ChatFactory) *cobra.Command {
	var usernameFlag string
	var emailFlag string

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create a user",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := chatFactory.Make()
			if err != nil {
				return err
			}
			defer env.Close()

			user, err := env.Api.CreateUser(cmd.Context(), chatApi.CreateUserRequest{
				Username: usernameFlag,
				Email:    emailFlag,
			})
			if err != nil {
				return eris.Wrap(err, "failed to create user")
			}

			env.Logger.Info("user created", zap.Int("createdUserId", user.UserID))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created user %s (id: %d)\n", user.Username, user.UserID)
			fmt.Fprintf(out, "Set session.user-id to %d in vecho.yml to chat as this user.\n", user.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&usernameFlag, "username", "", "Username of the new user")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Email address of the new user")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}
