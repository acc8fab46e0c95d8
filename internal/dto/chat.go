package dto

import "github.com/SscSPs/healthcare_assistant_app/internal/core/domain"

// ChatRequest is a message typed into the chat tab.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHistoryResponse is the session transcript, oldest first.
type ChatHistoryResponse struct {
	Messages []ChatLine `json:"messages"`
}

// ChatLine is one rendered transcript line.
type ChatLine struct {
	Role     domain.ChatRole `json:"role"`
	Content  string          `json:"content"`
	Markdown string          `json:"markdown"`
}

// ToChatHistoryResponse converts a transcript to its DTO.
func ToChatHistoryResponse(messages []domain.ChatMessage) ChatHistoryResponse {
	resp := ChatHistoryResponse{Messages: make([]ChatLine, len(messages))}
	for i, m := range messages {
		resp.Messages[i] = ChatLine{Role: m.Role, Content: m.Content, Markdown: m.Markdown()}
	}
	return resp
}
