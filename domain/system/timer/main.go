//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package timer

import "time"

// ITimer はメッセージのタイムスタンプに使う現在時刻を提供します。
type ITimer interface {
	Now() time.Time
}
