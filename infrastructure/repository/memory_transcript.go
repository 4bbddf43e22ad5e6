package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

// memoryTranscriptRepository é usado quando DATABASE_URL não está configurada
type memoryTranscriptRepository struct {
	mu       sync.RWMutex
	sessions map[string][]domain.ChatMessage
}

func NewMemoryTranscriptRepository() TranscriptRepository {
	return &memoryTranscriptRepository{
		sessions: make(map[string][]domain.ChatMessage),
	}
}

func (r *memoryTranscriptRepository) SaveMessage(_ context.Context, msg domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sessions[msg.SessionID] {
		if existing.ID == msg.ID {
			return nil
		}
	}

	msg.Blocks = nil
	r.sessions[msg.SessionID] = append(r.sessions[msg.SessionID], msg)
	return nil
}

func (r *memoryTranscriptRepository) ListMessages(_ context.Context, sessionID string) ([]domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]domain.ChatMessage, 0, len(r.sessions[sessionID])), r.sessions[sessionID]...), nil
}
