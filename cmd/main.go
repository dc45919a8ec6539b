package cmd

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/vecho/cmd/chatCommand"
	"github.com/t-kuni/vecho/cmd/clearCommand"
	"github.com/t-kuni/vecho/cmd/historyCommand"
	"github.com/t-kuni/vecho/cmd/initCommand"
	"github.com/t-kuni/vecho/cmd/recentCommand"
	"github.com/t-kuni/vecho/cmd/sendCommand"
	"github.com/t-kuni/vecho/cmd/userCommand"
	"github.com/t-kuni/vecho/cmd/versionCommand"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"github.com/t-kuni/vecho/domain/service/configFindService"
	"github.com/t-kuni/vecho/domain/service/configLoad"
	"github.com/t-kuni/vecho/infrastructure/external/chatApi"
	configRepo "github.com/t-kuni/vecho/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/vecho/infrastructure/repository/file"
	"github.com/t-kuni/vecho/infrastructure/system/ksuid"
	"github.com/t-kuni/vecho/infrastructure/system/logger"
	"github.com/t-kuni/vecho/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	configLoadSrv := configLoad.NewConfigLoadService(configFindSrv, configRepository)
	apiFactory := chatApi.NewChatApiFactory(ksuid.NewKsuidGenerator())
	chatFactorySrv := chatFactory.NewChatFactory(configLoadSrv, apiFactory, logger.NewLoggerFactory(), timer.NewTimer())

	cmd := &cobra.Command{
		Use:          "vecho",
		Short:        "A terminal client for the Vecho Ai chat service",
		Long:         `Vecho is a terminal client for the Vecho Ai chat service. Run without a subcommand to start an interactive chat.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         chatCommand.RunChat(chatFactorySrv),
	}

	cmd.AddCommand(chatCommand.NewChatCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(sendCommand.NewSendCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(historyCommand.NewHistoryCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(recentCommand.NewRecentCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(clearCommand.NewClearCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(userCommand.NewUserCommand(chatFactorySrv).CobraCommand)
	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
