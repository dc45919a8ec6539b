package chatApi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	domainChatApi "github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/repository/config"
	"github.com/t-kuni/vecho/domain/system/ksuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestee(t *testing.T, mockCtrl *gomock.Controller, baseURL string) *ChatApiClient {
	t.Helper()

	mockKsuid := ksuid.NewMockIKsuid(mockCtrl)
	mockKsuid.EXPECT().New().Return("test-ksuid").AnyTimes()

	return NewChatApiClient(config.Api{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, mockKsuid, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestChatApiClient_SendChat(t *testing.T) {
	t.Run("メッセージを送信して応答を受け取れること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/chat", r.URL.Path)
			assert.Equal(t, "test-ksuid", r.Header.Get("X-Request-Id"))

			var body map[string]any
			err := json.NewDecoder(r.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "What's the weather?", body["message"])
			assert.Equal(t, float64(1), body["user_id"])
			assert.Equal(t, "general", body["mode"])

			writeJSON(w, http.StatusOK, `{"response": "Sunny", "timestamp": "2021-01-02T15:04:05"}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		resp, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{
			Message: "What's the weather?",
			UserID:  1,
			Mode:    "general",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sunny", resp.Response)
		assert.Equal(t, "2021-01-02T15:04:05", resp.Timestamp)
	})

	t.Run("エラーペイロード付きの500はApiErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"error": "model unavailable"}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var apiErr *domainChatApi.ApiError
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "model unavailable", apiErr.Message)
		assert.Equal(t, "test-ksuid", apiErr.RequestID)
	})

	t.Run("エラーペイロードを読めない2xx以外はNetworkErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "<html>bad gateway</html>")
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var netErr *domainChatApi.NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("壊れたJSONはNetworkErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"response": `)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var netErr *domainChatApi.NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("Content-Typeがなくても応答をJSONとして解釈できること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			io.WriteString(w, `{"response": "Sunny"}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		resp, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		assert.NoError(t, err)
		assert.Equal(t, "Sunny", resp.Response)
	})

	t.Run("ボディが空の500はNetworkErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var netErr *domainChatApi.NetworkError
		assert.True(t, errors.As(err, &netErr))
		assert.Equal(t, "test-ksuid", netErr.RequestID)
	})

	t.Run("responseフィールドがない場合はNetworkErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var netErr *domainChatApi.NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("接続できない場合はNetworkErrorになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL + "/api"
		server.Close()

		testee := newTestee(t, mockCtrl, baseURL)
		_, err := testee.SendChat(context.Background(), domainChatApi.ChatRequest{Message: "X", UserID: 1, Mode: "qa"})

		var netErr *domainChatApi.NetworkError
		assert.True(t, errors.As(err, &netErr))
		assert.Equal(t, "test-ksuid", netErr.RequestID)
	})
}

func TestChatApiClient_GetHistory(t *testing.T) {
	t.Run("ユーザーIDを指定して履歴をサーバーの順序のまま取得できること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/history", r.URL.Path)
			assert.Equal(t, "7", r.URL.Query().Get("user_id"))

			writeJSON(w, http.StatusOK, `{"history": [
				{"user_message": "second", "ai_response": "answer 2", "timestamp": "2021-01-02 15:05:00"},
				{"user_message": "hi", "ai_response": "hello", "timestamp": "2021-01-02 15:04:05"}
			]}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		entries, err := testee.GetHistory(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, []domainChatApi.HistoryEntry{
			{UserMessage: "second", AiResponse: "answer 2", Timestamp: "2021-01-02 15:05:00"},
			{UserMessage: "hi", AiResponse: "hello", Timestamp: "2021-01-02 15:04:05"},
		}, entries)
	})

	t.Run("履歴が空の場合は空のスライスを返すこと", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"history": []}`)
		}))
		defer server.Close()

		testee := newTestee(t, mockCtrl, server.URL+"/api")
		entries, err := testee.GetHistory(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestChatApiClient_GetRecentChats(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recent-chats", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(w, http.StatusOK, `{"recent_chats": [
			{"title": "What is Go?", "preview": "What is Go?", "timestamp": "2021-01-02 15:04:05", "time_ago": "2 hours ago", "message_count": 3}
		]}`)
	}))
	defer server.Close()

	testee := newTestee(t, mockCtrl, server.URL+"/api")
	chats, err := testee.GetRecentChats(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, []domainChatApi.RecentChat{
		{Title: "What is Go?", Preview: "What is Go?", Timestamp: "2021-01-02 15:04:05", TimeAgo: "2 hours ago", MessageCount: 3},
	}, chats)
}

func TestChatApiClient_DeleteChats(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/chats", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("user_id"))

		writeJSON(w, http.StatusOK, `{"message": "Successfully deleted 4 chat(s)", "deleted_count": 4}`)
	}))
	defer server.Close()

	testee := newTestee(t, mockCtrl, server.URL+"/api")
	result, err := testee.DeleteChats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 4, result.DeletedCount)
	assert.Equal(t, "Successfully deleted 4 chat(s)", result.Message)
}

func TestChatApiClient_CreateUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user", r.URL.Path)

		var body map[string]string
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "alice@example.com", body["email"])

		writeJSON(w, http.StatusOK, `{"user_id": 42, "username": "alice"}`)
	}))
	defer server.Close()

	testee := newTestee(t, mockCtrl, server.URL+"/api")
	user, err := testee.CreateUser(context.Background(), domainChatApi.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, domainChatApi.User{UserID: 42, Username: "alice"}, user)
}
