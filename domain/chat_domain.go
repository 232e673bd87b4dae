package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageFailedChatRequest = "invalid request. 'messages' must be an array."
	MessageFailedChat        = "Failed to fetch response from OpenAI"

	ErrInvalidChatMessages = errors.New("messages must be an array")
	ErrChatUpstream        = errors.New("chat completion upstream error")
)

type ChatRequest struct {
	Messages []json.RawMessage `json:"messages" validate:"required"`
}
