package message

import "time"

// Sender はメッセージの送信者を表します。
type Sender string

const (
	SenderUser Sender = "user"
	SenderAi   Sender = "ai"
)

// TimeLayout は画面に表示する時刻の書式です。
const TimeLayout = "15:04:05"

// Message は会話に表示される1件のメッセージです。生成後に変更されることはありません。
type Message struct {
	Text      string
	Sender    Sender
	Timestamp time.Time
}

func NewMessage(text string, sender Sender, timestamp time.Time) Message {
	return Message{
		Text:      text,
		Sender:    sender,
		Timestamp: timestamp,
	}
}

func (m Message) FormattedTime() string {
	return m.Timestamp.Format(TimeLayout)
}
