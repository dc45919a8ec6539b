//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package logger

import (
	"github.com/t-kuni/vecho/domain/repository/config"
	"go.uber.org/zap"
)

// Factory は設定からロガーを生成します。
// 対話画面が端末を占有するため、ログは設定されたファイルに出力されます。
type Factory interface {
	Make(cfg config.Log) (*zap.Logger, error)
}
