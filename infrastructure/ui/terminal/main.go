package terminal

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/vecho/domain/model/conversation"
	"github.com/t-kuni/vecho/domain/model/message"
	"github.com/t-kuni/vecho/domain/service/chatClient"
)

const (
	inputHeight = 3
	// ヘッダー・ステータス・ヘルプの各1行と入力欄の枠線
	chromeHeight = 5 + inputHeight
	minWidth     = 20
	minHeight    = 3
)

// Screen は対話画面の Renderer です。bubbletea の Update ループからのみ操作されます。
// 会話そのものは ChatClient が保持しており、Screen は入力欄と処理中表示の状態だけを持ちます。
type Screen struct {
	inputEnabled bool
	busy         bool
}

func NewScreen() *Screen {
	return &Screen{inputEnabled: true}
}

// RenderMessage は何もしません。再描画は Update の最後にまとめて行います。
func (s *Screen) RenderMessage(m message.Message) {}

func (s *Screen) SetInputEnabled(enabled bool) {
	s.inputEnabled = enabled
}

func (s *Screen) SetBusy(busy bool) {
	s.busy = busy
}

func (s *Screen) InputEnabled() bool {
	return s.inputEnabled
}

func (s *Screen) Busy() bool {
	return s.busy
}

// MarkdownRenderer はAIの応答を整形します。*glamour.TermRenderer が実装しています。
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

type historyLoadedMsg struct {
	result chatClient.HistoryResult
}

type sendSettledMsg struct {
	result chatClient.SendResult
}

type styles struct {
	header      lipgloss.Style
	mode        lipgloss.Style
	userLabel   lipgloss.Style
	aiLabel     lipgloss.Style
	time        lipgloss.Style
	placeholder lipgloss.Style
	status      lipgloss.Style
	input       lipgloss.Style
	help        lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		mode:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		userLabel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		aiLabel:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		time:        lipgloss.NewStyle().Faint(true),
		placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		status:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
		help:        lipgloss.NewStyle().Faint(true),
	}
}

type Model struct {
	ctx       context.Context
	client    *chatClient.ChatClient
	screen    *Screen
	modes     []string
	modeIndex int
	markdown  MarkdownRenderer

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   styles

	width  int
	height int
}

func NewModel(
	ctx context.Context,
	client *chatClient.ChatClient,
	screen *Screen,
	modes []string,
	mode string,
	markdown MarkdownRenderer,
) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if len(modes) == 0 {
		modes = []string{mode}
	}
	modeIndex := 0
	for i, m := range modes {
		if m == mode {
			modeIndex = i
			break
		}
	}

	m := Model{
		ctx:       ctx,
		client:    client,
		screen:    screen,
		modes:     modes,
		modeIndex: modeIndex,
		markdown:  markdown,
		textarea:  ta,
		viewport:  viewport.New(80, 20),
		spinner:   sp,
		styles:    defaultStyles(),
	}
	m.resize(80, 20+chromeHeight)
	m.refresh()
	return m
}

func (m Model) Mode() string {
	return m.modes[m.modeIndex]
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.loadHistory())
}

func (m Model) loadHistory() tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		return historyLoadedMsg{result: client.FetchHistory(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case historyLoadedMsg:
		m.client.ApplyHistory(msg.result)
		m.refresh()
		return m, nil

	case sendSettledMsg:
		m.client.CompleteSend(msg.result)
		cmd := m.syncInput()
		m.refresh()
		return m, cmd

	case spinner.TickMsg:
		if !m.screen.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.modeIndex = (m.modeIndex + 1) % len(m.modes)
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case tea.KeyEnter:
			if msg.Alt {
				if m.screen.InputEnabled() {
					m.textarea.InsertString("\n")
				}
				return m, nil
			}
			return m.submit()
		}

		if !m.screen.InputEnabled() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.screen.InputEnabled() {
		return m, nil
	}

	pending, ok := m.client.BeginSend(m.textarea.Value(), m.Mode())
	if !ok {
		return m, nil
	}

	m.textarea.Reset()
	m.syncInput()
	m.refresh()

	ctx := m.ctx
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return sendSettledMsg{result: pending.Run(ctx)}
		},
	)
}

func (m *Model) syncInput() tea.Cmd {
	if m.screen.InputEnabled() {
		return m.textarea.Focus()
	}
	m.textarea.Blur()
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = max(width, minWidth)
	m.height = max(height, chromeHeight+minHeight)

	m.viewport.Width = m.width
	m.viewport.Height = m.height - chromeHeight
	m.textarea.SetWidth(m.width - 2)
}

// refresh は会話を描画し直し、最新のメッセージまでスクロールします。
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

func (m Model) renderConversation() string {
	messages := m.client.Messages()
	if len(messages) == 0 {
		return m.styles.placeholder.Width(m.width).Render(conversation.WelcomeText)
	}

	body := lipgloss.NewStyle().Width(m.width)
	var b strings.Builder
	for _, msg := range messages {
		label := m.styles.userLabel.Render("You")
		text := body.Render(msg.Text)
		if msg.Sender == message.SenderAi {
			label = m.styles.aiLabel.Render("Vecho Ai")
			text = m.renderReply(msg.Text, body)
		}

		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n")
		b.WriteString(m.styles.time.Render(msg.FormattedTime()))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderReply(text string, fallback lipgloss.Style) string {
	if m.markdown == nil {
		return fallback.Render(text)
	}
	out, err := m.markdown.Render(text)
	if err != nil {
		return fallback.Render(text)
	}
	return strings.Trim(out, "\n")
}

func (m Model) View() string {
	header := m.styles.header.Render("Vecho Ai") + "  " +
		m.styles.mode.Render("mode: "+m.Mode()+" (Tab to switch)")

	status := ""
	if m.screen.Busy() {
		status = m.styles.status.Render(m.spinner.View() + " Thinking...")
	}

	help := m.styles.help.Render("Enter send • Alt+Enter newline • PgUp/PgDn scroll • Esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		status,
		m.styles.input.Render(m.textarea.View()),
		help,
	)
}

// Run は対話画面を起動し、ユーザーが終了するか ctx がキャンセルされるまで戻りません。
func Run(ctx context.Context, client *chatClient.ChatClient, screen *Screen, modes []string, mode string) error {
	var markdown MarkdownRenderer
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76)); err == nil {
		markdown = r
	}

	p := tea.NewProgram(
		NewModel(ctx, client, screen, modes, mode, markdown),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return eris.Wrap(err, "failed to run chat ui")
	}
	return nil
}
