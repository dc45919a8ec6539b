//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package ksuid

// IKsuid はリクエストの相関IDを生成します。
type IKsuid interface {
	New() string
}
