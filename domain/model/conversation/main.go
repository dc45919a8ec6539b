package conversation

import "github.com/t-kuni/vecho/domain/model/message"

// WelcomeText は会話にメッセージがない間に表示されます。
const WelcomeText = "Welcome to Vecho Ai! Ask a question, request an explanation, or paste something to summarize."

// ConversationView は表示中のメッセージを古い順に並べたものです。
type ConversationView struct {
	messages []message.Message
}

func NewConversationView() *ConversationView {
	return &ConversationView{
		messages: []message.Message{},
	}
}

func (v *ConversationView) Append(m message.Message) {
	v.messages = append(v.messages, m)
}

// Messages は表示中のメッセージのコピーを返します。
func (v *ConversationView) Messages() []message.Message {
	copied := make([]message.Message, len(v.messages))
	copy(copied, v.messages)
	return copied
}

func (v *ConversationView) Len() int {
	return len(v.messages)
}

// IsPlaceholder はウェルカム表示のままかどうかを返します。
func (v *ConversationView) IsPlaceholder() bool {
	return len(v.messages) == 0
}
