//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package chatApi

import (
	"context"
	"fmt"

	"github.com/t-kuni/vecho/domain/repository/config"
	"go.uber.org/zap"
)

// Client はチャットAPIとの通信を抽象化するインターフェースです。
// ステータスコード2xx以外でエラーペイロードを読み取れた場合は *ApiError を返します。
// 通信エラーやレスポンスを解釈できない場合は *NetworkError を返します。
type Client interface {
	// SendChat はメッセージを送信し、AIの応答を返します。
	SendChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// GetHistory はサーバーが返した順(新しい順)のまま履歴を返します。
	GetHistory(ctx context.Context, userID int) ([]HistoryEntry, error)
	GetRecentChats(ctx context.Context, userID int, limit int) ([]RecentChat, error)
	DeleteChats(ctx context.Context, userID int) (DeleteResult, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (User, error)
}

// Factory は設定からClientを生成します。
type Factory interface {
	Make(api config.Api, logger *zap.Logger) Client
}

type ChatRequest struct {
	Message string
	UserID  int
	Mode    string
}

type ChatResponse struct {
	Response  string
	Timestamp string
}

// HistoryEntry は1ターン分(ユーザーの発言とAIの応答)の履歴です。
type HistoryEntry struct {
	UserMessage string
	AiResponse  string
	Timestamp   string
}

type RecentChat struct {
	Title        string
	Preview      string
	Timestamp    string
	TimeAgo      string
	MessageCount int
}

type DeleteResult struct {
	Message      string
	DeletedCount int
}

type CreateUserRequest struct {
	Username string
	Email    string
}

type User struct {
	UserID   int
	Username string
}

// ApiError はAPIがエラーペイロード付きで2xx以外を返したことを表します。
type ApiError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("chat api responded %d: %s", e.StatusCode, e.Message)
}

// NetworkError は通信の失敗、またはレスポンスを解釈できなかったことを表します。
type NetworkError struct {
	RequestID string
	Cause     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("chat api request failed: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
