package chatFactory

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/model/session"
	"github.com/t-kuni/vecho/domain/repository/config"
	"github.com/t-kuni/vecho/domain/service/chatClient"
	"github.com/t-kuni/vecho/domain/service/configLoad"
	"github.com/t-kuni/vecho/domain/system/logger"
	"github.com/t-kuni/vecho/domain/system/timer"
	"github.com/t-kuni/vecho/domain/ui"
	"go.uber.org/zap"
)

type ChatFactory struct {
	configLoadService *configLoad.ConfigLoadService
	apiFactory        chatApi.Factory
	loggerFactory     logger.Factory
	timer             timer.ITimer
}

func NewChatFactory(
	configLoadService *configLoad.ConfigLoadService,
	apiFactory chatApi.Factory,
	loggerFactory logger.Factory,
	timer timer.ITimer,
) *ChatFactory {
	return &ChatFactory{
		configLoadService: configLoadService,
		apiFactory:        apiFactory,
		loggerFactory:     loggerFactory,
		timer:             timer,
	}
}

// Environment は1回のコマンド実行で共有する設定・セッション・APIクライアント・ロガーです。
type Environment struct {
	Config  *config.Config
	Session session.Session
	Api     chatApi.Client
	Logger  *zap.Logger
	timer   timer.ITimer
}

func (f *ChatFactory) Make() (*Environment, error) {
	cfg, err := f.configLoadService.Load()
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	l, err := f.loggerFactory.Make(cfg.Log)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create logger")
	}

	sess := session.NewSession(cfg.Session.UserID)
	l = l.With(zap.Int("userId", sess.UserID))

	return &Environment{
		Config:  cfg,
		Session: sess,
		Api:     f.apiFactory.Make(cfg.Api, l),
		Logger:  l,
		timer:   f.timer,
	}, nil
}

func (e *Environment) NewChatClient(renderer ui.Renderer) *chatClient.ChatClient {
	return chatClient.NewChatClient(e.Session, e.Api, renderer, e.timer, e.Logger)
}

func (e *Environment) Close() {
	_ = e.Logger.Sync()
}
