package services

import "context"

// AssistantSvc is the chat assistant gateway.
type AssistantSvc interface {
	// Ask returns the generated reply followed by the disclaimer. A failed
	// generation is reported inside the returned text ("Error: ..."); Ask
	// itself never fails.
	Ask(ctx context.Context, message string) string
}
