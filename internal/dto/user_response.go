package dto

import "github.com/SscSPs/healthcare_assistant_app/internal/core/domain"

// SessionResponse describes the caller's session.
type SessionResponse struct {
	Username string `json:"username"`
	LoggedIn bool   `json:"loggedIn"`
}

// ToSessionResponse converts a domain.Session to its DTO.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{Username: s.Username, LoggedIn: s.LoggedIn}
}
