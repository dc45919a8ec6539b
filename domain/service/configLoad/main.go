package configLoad

import (
	"errors"

	"github.com/caarlos0/env/v6"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/domain/repository/config"
	"github.com/t-kuni/vecho/domain/service/configFindService"
)

type ConfigFinder interface {
	FindConfig() (string, error)
}

type ConfigLoadService struct {
	configFinder     ConfigFinder
	configRepository config.Repository
}

func NewConfigLoadService(configFinder ConfigFinder, configRepository config.Repository) *ConfigLoadService {
	return &ConfigLoadService{
		configFinder:     configFinder,
		configRepository: configRepository,
	}
}

// Load はデフォルト値、設定ファイル、環境変数の順に設定を重ねて返します。
// 設定ファイルが見つからない場合はエラーにせず、デフォルト値と環境変数だけを使います。
func (s *ConfigLoadService) Load() (*config.Config, error) {
	cfg := config.NewDefaultConfig()

	configPath, err := s.configFinder.FindConfig()
	switch {
	case errors.Is(err, configFindService.ErrConfigNotFound):
	case err != nil:
		return nil, eris.Wrap(err, "failed to find config file")
	default:
		cfg, err = s.configRepository.Read(configPath)
		if err != nil {
			return nil, eris.Wrap(err, "failed to read config file")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, eris.Wrap(err, "failed to parse environment variables")
	}

	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid config")
	}

	return cfg, nil
}
