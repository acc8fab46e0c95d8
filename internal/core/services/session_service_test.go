package services_test

import (
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AppendAndRead(t *testing.T) {
	svc, err := services.NewSessionService(8, 10)
	require.NoError(t, err)

	empty := svc.Session("alice")
	assert.True(t, empty.LoggedIn)
	assert.Equal(t, "alice", empty.Username)
	assert.Empty(t, empty.Messages)

	svc.AppendMessages("alice",
		domain.ChatMessage{Role: domain.RoleUser, Content: "hi"},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: "hello"},
	)

	got := svc.Session("alice").Messages
	require.Len(t, got, 2)
	assert.Equal(t, "**You:** hi", got[0].Markdown())
	assert.Equal(t, "**AI:** hello", got[1].Markdown())
	assert.Empty(t, svc.Session("bob").Messages)
}

func TestSession_HistoryIsCapped(t *testing.T) {
	svc, err := services.NewSessionService(8, 3)
	require.NoError(t, err)

	for _, c := range []string{"1", "2", "3", "4", "5"} {
		svc.AppendMessages("alice", domain.ChatMessage{Role: domain.RoleUser, Content: c})
	}

	got := svc.Session("alice").Messages
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].Content)
	assert.Equal(t, "5", got[2].Content)
}

func TestSession_LeastRecentlyUsedEvicted(t *testing.T) {
	svc, err := services.NewSessionService(2, 10)
	require.NoError(t, err)

	svc.AppendMessages("a", domain.ChatMessage{Role: domain.RoleUser, Content: "a"})
	svc.AppendMessages("b", domain.ChatMessage{Role: domain.RoleUser, Content: "b"})
	svc.AppendMessages("c", domain.ChatMessage{Role: domain.RoleUser, Content: "c"})

	assert.Empty(t, svc.Session("a").Messages)
	assert.Len(t, svc.Session("c").Messages, 1)
}

func TestSession_ResetAndCopy(t *testing.T) {
	svc, err := services.NewSessionService(8, 10)
	require.NoError(t, err)
	svc.AppendMessages("alice", domain.ChatMessage{Role: domain.RoleUser, Content: "hi"})

	snapshot := svc.Session("alice")
	snapshot.Messages[0].Content = "tampered"
	assert.Equal(t, "hi", svc.Session("alice").Messages[0].Content)

	svc.Reset("alice")
	assert.Empty(t, svc.Session("alice").Messages)
}
