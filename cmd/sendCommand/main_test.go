package sendCommand_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/vecho/cmd/sendCommand"
	"github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/repository/file"
	"github.com/t-kuni/vecho/domain/service/chatFactory"
	"github.com/t-kuni/vecho/domain/service/configFindService"
	"github.com/t-kuni/vecho/domain/service/configLoad"
	"github.com/t-kuni/vecho/domain/system/logger"
	"github.com/t-kuni/vecho/domain/system/timer"
	configRepo "github.com/t-kuni/vecho/infrastructure/repository/config"
	"github.com/t-kuni/vecho/testUtil"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSendCommand(t *testing.T) {
	type Mocks struct {
		ApiClient      *chatApi.MockClient
		FileRepository *file.MockRepository
		Timer          *timer.MockITimer
	}

	callCommand := func(
		mockCtrl *gomock.Controller,
		args []string,
		customizeMocks func(mocks Mocks),
	) (string, error) {
		mockApiClient := chatApi.NewMockClient(mockCtrl)
		mockApiFactory := chatApi.NewMockFactory(mockCtrl)
		mockApiFactory.EXPECT().Make(gomock.Any(), gomock.Any()).Return(mockApiClient).AnyTimes()
		mockLoggerFactory := logger.NewMockFactory(mockCtrl)
		mockLoggerFactory.EXPECT().Make(gomock.Any()).Return(zap.NewNop(), nil).AnyTimes()
		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockTimer := timer.NewMockITimer(mockCtrl)

		customizeMocks(Mocks{
			ApiClient:      mockApiClient,
			FileRepository: mockFileRepo,
			Timer:          mockTimer,
		})

		configLoadSvc := configLoad.NewConfigLoadService(
			configFindService.NewConfigFindService(mockFileRepo),
			configRepo.NewConfigRepository(),
		)
		factory := chatFactory.NewChatFactory(configLoadSvc, mockApiFactory, mockLoggerFactory, mockTimer)
		testee := sendCommand.NewSendCommand(factory)

		out := &bytes.Buffer{}
		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(testee.CobraCommand)
		rootCmd.SetOut(out)
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs(args)

		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("メッセージを送信して応答が表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, []string{"send", "What's", "the", "weather?"}, func(mocks Mocks) {
			mocks.FileRepository.EXPECT().Getwd().Return(space.Dir, nil).AnyTimes()
			mocks.Timer.EXPECT().Now().Return(testUtil.NewTime("2021-01-02T15:04:05Z")).AnyTimes()
			mocks.ApiClient.EXPECT().
				SendChat(gomock.Any(), chatApi.ChatRequest{Message: "What's the weather?", UserID: 1, Mode: "qa"}).
				Return(chatApi.ChatResponse{Response: "Sunny"}, nil)
		})

		assert.NoError(t, err)
		assert.Contains(t, out, "[15:04:05] You\nWhat's the weather?\n")
		assert.Contains(t, out, "[15:04:05] Vecho Ai\nSunny\n")
	})

	t.Run("設定ファイルのユーザーIDとmodeフラグが使われること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("vecho.yml", []byte("session:\n  user-id: 3\nlog:\n  path: \"\"\n"))

		out, err := callCommand(mockCtrl, []string{"send", "--mode", "summary", "long text"}, func(mocks Mocks) {
			mocks.FileRepository.EXPECT().Getwd().Return(space.Dir, nil).AnyTimes()
			mocks.Timer.EXPECT().Now().Return(testUtil.NewTime("2021-01-02T15:04:05Z")).AnyTimes()
			mocks.ApiClient.EXPECT().
				SendChat(gomock.Any(), chatApi.ChatRequest{Message: "long text", UserID: 3, Mode: "summary"}).
				Return(chatApi.ChatResponse{Response: "short"}, nil)
		})

		assert.NoError(t, err)
		assert.Contains(t, out, "short")
	})

	t.Run("APIエラーはエラーメッセージとして表示されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, []string{"send", "X"}, func(mocks Mocks) {
			mocks.FileRepository.EXPECT().Getwd().Return(space.Dir, nil).AnyTimes()
			mocks.Timer.EXPECT().Now().Return(testUtil.NewTime("2021-01-02T15:04:05Z")).AnyTimes()
			mocks.ApiClient.EXPECT().SendChat(gomock.Any(), gomock.Any()).
				Return(chatApi.ChatResponse{}, &chatApi.ApiError{StatusCode: 500, Message: "model unavailable"})
		})

		assert.NoError(t, err)
		assert.Contains(t, out, "Error: model unavailable")
	})

	t.Run("空白だけのメッセージは何もせず正常終了すること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		out, err := callCommand(mockCtrl, []string{"send", "   "}, func(mocks Mocks) {
			mocks.FileRepository.EXPECT().Getwd().Return(space.Dir, nil).AnyTimes()
			mocks.ApiClient.EXPECT().SendChat(gomock.Any(), gomock.Any()).Times(0)
		})

		assert.NoError(t, err)
		assert.Empty(t, out)
	})
}
