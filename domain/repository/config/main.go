package config

import (
	"time"

	"github.com/rotisserie/eris"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 30 * time.Second
	DefaultUserID  = 1
	DefaultMode    = "qa"
	DefaultLevel   = "info"
	DefaultLogPath = ".vecho/vecho.log"
)

type Config struct {
	Api     Api     `yaml:"api"`
	Session Session `yaml:"session"`
	Chat    Chat    `yaml:"chat"`
	Log     Log     `yaml:"log"`
}

type Api struct {
	BaseURL string        `yaml:"base-url" env:"VECHO_API_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"VECHO_API_TIMEOUT"`
}

type Session struct {
	UserID int `yaml:"user-id" env:"VECHO_USER_ID"`
}

type Chat struct {
	// Mode はサーバーに渡すモード名です。クライアントは値を解釈しません。
	Mode  string   `yaml:"mode" env:"VECHO_MODE"`
	Modes []string `yaml:"modes"`
}

type Log struct {
	Level string `yaml:"level" env:"VECHO_LOG_LEVEL"`
	Path  string `yaml:"path" env:"VECHO_LOG_PATH"`
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}

func NewDefaultConfig() *Config {
	return &Config{
		Api: Api{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Session: Session{
			UserID: DefaultUserID,
		},
		Chat: Chat{
			Mode:  DefaultMode,
			Modes: []string{"qa", "explanation", "summary"},
		},
		Log: Log{
			Level: DefaultLevel,
			Path:  DefaultLogPath,
		},
	}
}

func (c *Config) Validate() error {
	if c.Api.BaseURL == "" {
		return eris.New("api.base-url must not be empty")
	}
	if c.Api.Timeout <= 0 {
		return eris.Errorf("api.timeout must be positive: %s", c.Api.Timeout)
	}
	if c.Session.UserID <= 0 {
		return eris.Errorf("session.user-id must be positive: %d", c.Session.UserID)
	}
	if c.Chat.Mode == "" {
		return eris.New("chat.mode must not be empty")
	}
	return nil
}

// SelectableModes は選択肢として表示するモードを返します。現在のモードは必ず含まれます。
func (c *Config) SelectableModes() []string {
	for _, m := range c.Chat.Modes {
		if m == c.Chat.Mode {
			return c.Chat.Modes
		}
	}
	return append([]string{c.Chat.Mode}, c.Chat.Modes...)
}
