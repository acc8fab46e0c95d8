package services

import (
	"sync"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	lru "github.com/hashicorp/golang-lru/v2"
)

// sessionService keeps each user's chat transcript in memory. Transcripts of
// the least recently active users are evicted once maxSessions is reached,
// and each transcript keeps only its newest historySize lines.
type sessionService struct {
	mu          sync.Mutex
	transcripts *lru.Cache[string, []domain.ChatMessage]
	historySize int
}

// NewSessionService creates the in-memory session store.
func NewSessionService(maxSessions, historySize int) (portssvc.SessionSvc, error) {
	if maxSessions <= 0 {
		maxSessions = 1024
	}
	cache, err := lru.New[string, []domain.ChatMessage](maxSessions)
	if err != nil {
		return nil, err
	}
	return &sessionService{transcripts: cache, historySize: historySize}, nil
}

func (s *sessionService) Session(username string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, _ := s.transcripts.Get(username)
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return &domain.Session{Username: username, LoggedIn: true, Messages: out}
}

func (s *sessionService) AppendMessages(username string, messages ...domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, _ := s.transcripts.Get(username)
	msgs = append(msgs, messages...)
	if s.historySize > 0 && len(msgs) > s.historySize {
		msgs = append([]domain.ChatMessage(nil), msgs[len(msgs)-s.historySize:]...)
	}
	s.transcripts.Add(username, msgs)
}

func (s *sessionService) Reset(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts.Remove(username)
}
