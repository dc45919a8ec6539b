package recentCommand

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
)

const defaultLimit = 10

type RecentCommand struct {
	CobraCommand *cobra.Command
}

func NewRecentCommand(chatFactory *chatFactory.ChatFactory) *RecentCommand {
	var limitFlag int

	cmd := &cobra.Command{
		Use:          "recent",
		Short:        "List recent chats",
		Long:         `List the most recent chats of the configured user with their relative time.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limitFlag <= 0 {
				return eris.Errorf("--limit must be positive: %d", limitFlag)
			}

			env, err := chatFactory.Make()
			if err != nil {
				return err
			}
			defer env.Close()

			chats, err := env.Api.GetRecentChats(cmd.Context(), env.Session.UserID, limitFlag)
			if err != nil {
				return eris.Wrap(err, "failed to load recent chats")
			}

			out := cmd.OutOrStdout()
			if len(chats) == 0 {
				fmt.Fprintln(out, "No recent chats.")
				return nil
			}

			for _, c := range chats {
				fmt.Fprintf(out, "%s (%s, %d messages)\n", c.Title, c.TimeAgo, c.MessageCount)
				if c.Preview != "" && c.Preview != c.Title {
					fmt.Fprintf(out, "  %s\n", c.Preview)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", defaultLimit, "Maximum number of chats to list")

	return &RecentCommand{
		CobraCommand: cmd,
	}
}
