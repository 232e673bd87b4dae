package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"restaurant-directory/domain"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	completionsPath = "/v1/chat/completions"
	chatModel       = "gpt-4o"
	maxTokens       = 16000
	temperature     = 0.3
)

type (
	ChatService interface {
		// Complete forwards the conversation upstream and returns the raw completion body.
		Complete(ctx context.Context, req domain.ChatRequest) ([]byte, error)
	}

	chatService struct {
		apiKey     string
		baseURL    string
		httpClient *http.Client
		logger     *zap.SugaredLogger
	}

	completionRequest struct {
		Model       string            `json:"model"`
		Messages    []json.RawMessage `json:"messages"`
		MaxTokens   int               `json:"max_tokens"`
		Temperature float64           `json:"temperature"`
	}
)

func NewChatService(apiKey, baseURL string, logger *zap.SugaredLogger) ChatService {
	return &chatService{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

func (s *chatService) Complete(ctx context.Context, req domain.ChatRequest) ([]byte, error) {
	if req.Messages == nil {
		return nil, domain.ErrInvalidChatMessages
	}

	requestJSON, err := json.Marshal(completionRequest{
		Model:       chatModel,
		Messages:    req.Messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+completionsPath, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChatUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrChatUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warnw("chat completion rejected", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: %s", domain.ErrChatUpstream, resp.Status)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not JSON", domain.ErrChatUpstream)
	}
	return body, nil
}
