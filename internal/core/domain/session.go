package domain

import "fmt"

// ChatRole identifies the author of a chat line.
type ChatRole string

const (
	RoleUser      ChatRole = "You"
	RoleAssistant ChatRole = "AI"
)

// ChatMessage is one line of the chat transcript.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Markdown renders the line the way the chat tab displays it.
func (m ChatMessage) Markdown() string {
	return fmt.Sprintf("**%s:** %s", m.Role, m.Content)
}

// Session is the per-user presentation state: who is logged in and the chat
// transcript so far. It is built by the presentation layer for each request
// and never read by the stores.
type Session struct {
	Username string        `json:"username"`
	LoggedIn bool          `json:"loggedIn"`
	Messages []ChatMessage `json:"messages"`
}
