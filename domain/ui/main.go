//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package ui

import "github.com/t-kuni/vecho/domain/model/message"

// Renderer は会話を表示する出力先を抽象化するインターフェースです。
// 呼び出しはすべて同じゴルーチン(UIスレッド)から行われます。
type Renderer interface {
	// RenderMessage はメッセージを末尾に追加します。
	// プレースホルダーが表示されていれば取り除き、最新のメッセージまでスクロールします。
	RenderMessage(m message.Message)
	// SetInputEnabled は入力欄と送信操作の有効/無効を切り替えます。何度呼んでも安全です。
	SetInputEnabled(enabled bool)
	// SetBusy は処理中インジケーターの表示を切り替えます。
	SetBusy(busy bool)
}
