package domain_test

import (
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"abc", true},
		{"john_doe_99", true},
		{"ABCDEFGHIJKLMNOPQRST", true},
		{"ab", false},
		{"ABCDEFGHIJKLMNOPQRSTU", false},
		{"john-doe", false},
		{"john doe", false},
		{"jöhn", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidUsername(tt.username))
		})
	}
}

func TestChatMessage_Markdown(t *testing.T) {
	assert.Equal(t, "**You:** hello", domain.ChatMessage{Role: domain.RoleUser, Content: "hello"}.Markdown())
	assert.Equal(t, "**AI:** hi", domain.ChatMessage{Role: domain.RoleAssistant, Content: "hi"}.Markdown())
}
