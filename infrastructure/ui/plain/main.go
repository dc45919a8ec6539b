package plain

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/t-kuni/vecho/domain/model/conversation"
	"github.com/t-kuni/vecho/domain/model/message"
)

// Renderer は会話を1行ずつ出力先に書き出します。単発のコマンドで使います。
type Renderer struct {
	out        io.Writer
	userStyle  lipgloss.Style
	aiStyle    lipgloss.Style
	timeStyle  lipgloss.Style
	mutedStyle lipgloss.Style
	busy       bool
}

func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:        out,
		userStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		aiStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		timeStyle:  r.NewStyle().Faint(true),
		mutedStyle: r.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
	}
}

func (r *Renderer) RenderMessage(m message.Message) {
	label := r.userStyle.Render("You")
	if m.Sender == message.SenderAi {
		label = r.aiStyle.Render("Vecho Ai")
	}
	fmt.Fprintf(r.out, "%s %s\n%s\n\n", r.timeStyle.Render("["+m.FormattedTime()+"]"), label, m.Text)
}

func (r *Renderer) SetInputEnabled(enabled bool) {}

func (r *Renderer) SetBusy(busy bool) {
	if busy && !r.busy {
		fmt.Fprintln(r.out, r.mutedStyle.Render("Thinking..."))
	}
	r.busy = busy
}

// RenderPlaceholder は会話が空のときのウェルカムメッセージを出力します。
func (r *Renderer) RenderPlaceholder() {
	fmt.Fprintln(r.out, r.mutedStyle.Render(conversation.WelcomeText))
}
