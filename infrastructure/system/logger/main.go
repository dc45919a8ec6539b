package logger

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/domain/repository/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerFactory struct{}

func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// Make はJSON形式でファイルに出力するロガーを生成します。パスが空の場合はログを出力しません。
func (f *LoggerFactory) Make(cfg config.Log) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level: %s", cfg.Level)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), os.ModePerm); err != nil {
		return nil, eris.Wrapf(err, "failed to create log directory for %s", cfg.Path)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{cfg.Path}
	zapConfig.ErrorOutputPaths = []string{cfg.Path}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, eris.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}
