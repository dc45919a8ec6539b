package config

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/domain/repository/config"
	"gopkg.in/yaml.v3"
)

type ConfigRepository struct{}

func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// Read は設定ファイルを読み込みます。ファイルに書かれていない項目はデフォルト値のままです。
func (r *ConfigRepository) Read(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read config file: %s", path)
	}

	cfg := config.NewDefaultConfig()
	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse config file: %s", path)
	}

	return cfg, nil
}

func (r *ConfigRepository) Write(path string, cfg *config.Config) error {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return eris.Wrap(err, "failed to marshal config")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return eris.Wrapf(err, "failed to create directory: %s", dir)
	}

	return os.WriteFile(path, content, 0644)
}
