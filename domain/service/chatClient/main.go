package chatClient

import (
	"context"
	"errors"
	"strings"

	"github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/model/conversation"
	"github.com/t-kuni/vecho/domain/model/message"
	"github.com/t-kuni/vecho/domain/model/session"
	"github.com/t-kuni/vecho/domain/system/timer"
	"github.com/t-kuni/vecho/domain/ui"
	"go.uber.org/zap"
)

const FallbackErrorText = "Sorry, I encountered an error. Please try again."

// ChatClient はユーザーの入力、チャットAPI、Renderer の間を仲介します。
//
// 会話を変更するメソッド(BeginSend, CompleteSend, ApplyHistory, RenderMessage)はUIのゴルーチンから呼び出してください。
// FetchHistory と PendingSend.Run はAPIとの通信だけを行うため、どのゴルーチンから呼んでも構いません。
type ChatClient struct {
	session  session.Session
	api      chatApi.Client
	renderer ui.Renderer
	timer    timer.ITimer
	logger   *zap.Logger
	view     *conversation.ConversationView
}

func NewChatClient(
	sess session.Session,
	api chatApi.Client,
	renderer ui.Renderer,
	timer timer.ITimer,
	logger *zap.Logger,
) *ChatClient {
	return &ChatClient{
		session:  sess,
		api:      api,
		renderer: renderer,
		timer:    timer,
		logger:   logger,
		view:     conversation.NewConversationView(),
	}
}

// SendResult は1回の送信の結果です。
type SendResult struct {
	Response string
	Err      error
}

// HistoryResult は履歴取得の結果です。
type HistoryResult struct {
	Entries []chatApi.HistoryEntry
	Err     error
}

// PendingSend はユーザーのメッセージを表示済みで、まだ送信していないリクエストです。
type PendingSend struct {
	Message string
	Mode    string
	userID  int
	api     chatApi.Client
}

func (p *PendingSend) Run(ctx context.Context) SendResult {
	resp, err := p.api.SendChat(ctx, chatApi.ChatRequest{
		Message: p.Message,
		UserID:  p.userID,
		Mode:    p.Mode,
	})
	if err != nil {
		return SendResult{Err: err}
	}
	return SendResult{Response: resp.Response}
}

func (c *ChatClient) Session() session.Session {
	return c.session
}

// Messages は表示中の会話を古い順に返します。
func (c *ChatClient) Messages() []message.Message {
	return c.view.Messages()
}

func (c *ChatClient) IsPlaceholder() bool {
	return c.view.IsPlaceholder()
}

// Initialize はセッションの履歴を読み込みます。失敗した場合はプレースホルダーのままです。
func (c *ChatClient) Initialize(ctx context.Context) {
	c.logger.Info("initializing chat session", zap.Int("userId", c.session.UserID))
	c.LoadHistory(ctx)
}

// SendMessage は text を送信し、応答を表示してから戻ります。
// text が空白だけの場合は何も表示・送信せず false を返します。
func (c *ChatClient) SendMessage(ctx context.Context, text string, mode string) bool {
	pending, ok := c.BeginSend(text, mode)
	if !ok {
		return false
	}
	c.CompleteSend(pending.Run(ctx))
	return true
}

// BeginSend はユーザーのメッセージを表示し、入力を無効にします。
func (c *ChatClient) BeginSend(text string, mode string) (*PendingSend, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	c.renderer.SetInputEnabled(false)
	c.renderer.SetBusy(true)
	c.RenderMessage(trimmed, message.SenderUser)

	return &PendingSend{
		Message: trimmed,
		Mode:    mode,
		userID:  c.session.UserID,
		api:     c.api,
	}, true
}

// CompleteSend は result に対応するAIのメッセージをちょうど1件表示し、入力を有効に戻します。
func (c *ChatClient) CompleteSend(result SendResult) {
	defer func() {
		c.renderer.SetInputEnabled(true)
		c.renderer.SetBusy(false)
	}()

	c.RenderMessage(c.replyText(result), message.SenderAi)
}

func (c *ChatClient) replyText(result SendResult) string {
	if result.Err == nil {
		return result.Response
	}

	var apiErr *chatApi.ApiError
	if errors.As(result.Err, &apiErr) {
		c.logger.Warn("chat api returned an error",
			zap.Int("status", apiErr.StatusCode),
			zap.String("requestId", apiErr.RequestID),
			zap.String("error", apiErr.Message))
		return "Error: " + apiErr.Message
	}

	fields := []zap.Field{zap.Error(result.Err)}
	var netErr *chatApi.NetworkError
	if errors.As(result.Err, &netErr) {
		fields = append(fields, zap.String("requestId", netErr.RequestID))
	}
	c.logger.Error("failed to send message", fields...)
	return FallbackErrorText
}

func (c *ChatClient) LoadHistory(ctx context.Context) {
	c.ApplyHistory(c.FetchHistory(ctx))
}

func (c *ChatClient) FetchHistory(ctx context.Context) HistoryResult {
	entries, err := c.api.GetHistory(ctx, c.session.UserID)
	return HistoryResult{Entries: entries, Err: err}
}

// ApplyHistory は取得した履歴を古い順に表示し、表示したターン数を返します。
// サーバーは新しい順で履歴を返します。
func (c *ChatClient) ApplyHistory(result HistoryResult) int {
	if result.Err != nil {
		c.logger.Error("failed to load chat history", zap.Error(result.Err))
		return 0
	}

	for i := len(result.Entries) - 1; i >= 0; i-- {
		entry := result.Entries[i]
		c.RenderMessage(entry.UserMessage, message.SenderUser)
		c.RenderMessage(entry.AiResponse, message.SenderAi)
	}
	return len(result.Entries)
}

func (c *ChatClient) RenderMessage(text string, sender message.Sender) {
	m := message.NewMessage(text, sender, c.timer.Now())
	c.view.Append(m)
	c.renderer.RenderMessage(m)
}
