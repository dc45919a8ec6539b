package chatApi

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	domainChatApi "github.com/t-kuni/vecho/domain/external/chatApi"
	"github.com/t-kuni/vecho/domain/repository/config"
	"github.com/t-kuni/vecho/domain/system/ksuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

type ChatApiClient struct {
	httpClient     *resty.Client
	ksuidGenerator ksuid.IKsuid
	logger         *zap.Logger
}

type ChatApiFactory struct {
	ksuidGenerator ksuid.IKsuid
}

func NewChatApiFactory(ksuidGenerator ksuid.IKsuid) *ChatApiFactory {
	return &ChatApiFactory{ksuidGenerator: ksuidGenerator}
}

func (f *ChatApiFactory) Make(api config.Api, logger *zap.Logger) domainChatApi.Client {
	return NewChatApiClient(api, f.ksuidGenerator, logger)
}

func NewChatApiClient(api config.Api, ksuidGenerator ksuid.IKsuid, logger *zap.Logger) *ChatApiClient {
	client := resty.New()
	client.SetBaseURL(api.BaseURL)
	client.SetTimeout(api.Timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetLogger(logger.Sugar())

	return &ChatApiClient{
		httpClient:     client,
		ksuidGenerator: ksuidGenerator,
		logger:         logger,
	}
}

type chatRequestBody struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	Mode    string `json:"mode"`
}

type chatResponseBody struct {
	Response  *string `json:"response"`
	Timestamp string  `json:"timestamp"`
}

type historyResponseBody struct {
	History []struct {
		UserMessage string `json:"user_message"`
		AiResponse  string `json:"ai_response"`
		Timestamp   string `json:"timestamp"`
	} `json:"history"`
}

type recentChatsResponseBody struct {
	RecentChats []struct {
		Title        string `json:"title"`
		Preview      string `json:"preview"`
		Timestamp    string `json:"timestamp"`
		TimeAgo      string `json:"time_ago"`
		MessageCount int    `json:"message_count"`
	} `json:"recent_chats"`
}

type deleteResponseBody struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

type createUserRequestBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createUserResponseBody struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

type errorResponseBody struct {
	Error *string `json:"error"`
}

func (c *ChatApiClient) SendChat(ctx context.Context, req domainChatApi.ChatRequest) (domainChatApi.ChatResponse, error) {
	var body chatResponseBody
	requestID, err := c.do(ctx, resty.MethodPost, "/chat", func(r *resty.Request) {
		r.SetBody(chatRequestBody{
			Message: req.Message,
			UserID:  req.UserID,
			Mode:    req.Mode,
		})
	}, &body)
	if err != nil {
		return domainChatApi.ChatResponse{}, err
	}

	if body.Response == nil {
		return domainChatApi.ChatResponse{}, &domainChatApi.NetworkError{
			RequestID: requestID,
			Cause:     eris.New("response field is missing"),
		}
	}

	return domainChatApi.ChatResponse{
		Response:  *body.Response,
		Timestamp: body.Timestamp,
	}, nil
}

func (c *ChatApiClient) GetHistory(ctx context.Context, userID int) ([]domainChatApi.HistoryEntry, error) {
	var body historyResponseBody
	_, err := c.do(ctx, resty.MethodGet, "/history", func(r *resty.Request) {
		r.SetQueryParam("user_id", strconv.Itoa(userID))
	}, &body)
	if err != nil {
		return nil, err
	}

	entries := make([]domainChatApi.HistoryEntry, len(body.History))
	for i, h := range body.History {
		entries[i] = domainChatApi.HistoryEntry{
			UserMessage: h.UserMessage,
			AiResponse:  h.AiResponse,
			Timestamp:   h.Timestamp,
		}
	}
	return entries, nil
}

func (c *ChatApiClient) GetRecentChats(ctx context.Context, userID int, limit int) ([]domainChatApi.RecentChat, error) {
	var body recentChatsResponseBody
	_, err := c.do(ctx, resty.MethodGet, "/recent-chats", func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"user_id": strconv.Itoa(userID),
			"limit":   strconv.Itoa(limit),
		})
	}, &body)
	if err != nil {
		return nil, err
	}

	chats := make([]domainChatApi.RecentChat, len(body.RecentChats))
	for i, rc := range body.RecentChats {
		chats[i] = domainChatApi.RecentChat{
			Title:        rc.Title,
			Preview:      rc.Preview,
			Timestamp:    rc.Timestamp,
			TimeAgo:      rc.TimeAgo,
			MessageCount: rc.MessageCount,
		}
	}
	return chats, nil
}

func (c *ChatApiClient) DeleteChats(ctx context.Context, userID int) (domainChatApi.DeleteResult, error) {
	var body deleteResponseBody
	_, err := c.do(ctx, resty.MethodDelete, "/chats", func(r *resty.Request) {
		r.SetQueryParam("user_id", strconv.Itoa(userID))
	}, &body)
	if err != nil {
		return domainChatApi.DeleteResult{}, err
	}

	return domainChatApi.DeleteResult{
		Message:      body.Message,
		DeletedCount: body.DeletedCount,
	}, nil
}

func (c *ChatApiClient) CreateUser(ctx context.Context, req domainChatApi.CreateUserRequest) (domainChatApi.User, error) {
	var body createUserResponseBody
	_, err := c.do(ctx, resty.MethodPost, "/user", func(r *resty.Request) {
		r.SetBody(createUserRequestBody{
			Username: req.Username,
			Email:    req.Email,
		})
	}, &body)
	if err != nil {
		return domainChatApi.User{}, err
	}

	return domainChatApi.User{
		UserID:   body.UserID,
		Username: body.Username,
	}, nil
}

// do は1件のリクエストを実行し、2xxのボディを result にデコードします。
// 2xx以外で {"error": ...} を読み取れた場合は *ApiError、それ以外の失敗はすべて *NetworkError になります。
func (c *ChatApiClient) do(
	ctx context.Context,
	method string,
	path string,
	prepare func(r *resty.Request),
	result any,
) (string, error) {
	requestID := c.ksuidGenerator.New()
	logger := c.logger.With(
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("path", path))

	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		ForceContentType("application/json").
		SetResult(result).
		SetError(&errorResponseBody{})
	prepare(req)

	resp, err := req.Execute(method, path)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			logger.Error("malformed response",
				zap.Error(err),
				zap.Int("status", resp.StatusCode()),
				zap.ByteString("body", resp.Body()))
			return requestID, &domainChatApi.NetworkError{
				RequestID: requestID,
				Cause:     eris.Wrap(err, "failed to decode response"),
			}
		}

		logger.Error("request failed", zap.Error(err))
		return requestID, &domainChatApi.NetworkError{
			RequestID: requestID,
			Cause:     eris.Wrapf(err, "failed to %s %s", method, path),
		}
	}

	logger.Debug("response received",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()))

	if resp.IsSuccess() {
		return requestID, nil
	}

	errBody, ok := resp.Error().(*errorResponseBody)
	if !ok || errBody.Error == nil {
		logger.Error("unreadable error response",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return requestID, &domainChatApi.NetworkError{
			RequestID: requestID,
			Cause:     eris.Errorf("unexpected status %d without error payload", resp.StatusCode()),
		}
	}

	return requestID, &domainChatApi.ApiError{
		StatusCode: resp.StatusCode(),
		Message:    *errBody.Error,
		RequestID:  requestID,
	}
}
