package plain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/vecho/domain/model/message"
	"github.com/t-kuni/vecho/testUtil"
)

func TestRenderer(t *testing.T) {
	t.Run("送信者と時刻付きでメッセージが出力されること", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r := NewRenderer(buf)

		r.RenderMessage(message.NewMessage("hi", message.SenderUser, testUtil.NewTime("2021-01-02T15:04:05Z")))
		r.RenderMessage(message.NewMessage("hello", message.SenderAi, testUtil.NewTime("2021-01-02T15:04:06Z")))

		out := buf.String()
		assert.Contains(t, out, "[15:04:05] You\nhi\n")
		assert.Contains(t, out, "[15:04:06] Vecho Ai\nhello\n")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("hi")), bytes.Index(buf.Bytes(), []byte("hello")))
	})

	t.Run("処理中の表示は一度だけ出力されること", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r := NewRenderer(buf)

		r.SetBusy(true)
		r.SetBusy(true)
		r.SetBusy(false)

		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Thinking...")))
	})

	t.Run("プレースホルダーが出力されること", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r := NewRenderer(buf)

		r.RenderPlaceholder()

		assert.Contains(t, buf.String(), "Welcome to Vecho Ai!")
	})
}
