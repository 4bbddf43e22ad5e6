package notifying

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

const DefaultCapacity = 100

type Notifier interface {
	Notify(ctx context.Context, level domain.NotificationLevel, title, description string) domain.Notification
	List(sinceID int64) []domain.Notification
}

// Service mantém as notificações mais recentes em memória, descartando as
// mais antigas quando a capacidade é atingida
type Service struct {
	mu       sync.RWMutex
	items    []domain.Notification
	capacity int
	nextID   int64
	now      func() time.Time
}

func NewService(capacity int) *Service {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Service{
		items:    make([]domain.Notification, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

func (s *Service) Notify(ctx context.Context, level domain.NotificationLevel, title, description string) domain.Notification {
	s.mu.Lock()
	s.nextID++
	notification := domain.Notification{
		ID:          s.nextID,
		Level:       level,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}

	if len(s.items) == s.capacity {
		copy(s.items, s.items[1:])
		s.items = s.items[:len(s.items)-1]
	}
	s.items = append(s.items, notification)
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"source": "notification",
		"level":  string(level),
	}).Infof("%s: %s", title, description)

	return notification
}

// List devolve as notificações com ID maior que sinceID, da mais antiga para a mais nova
func (s *Service) List(sinceID int64) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, 0, len(s.items))
	for _, n := range s.items {
		if n.ID > sinceID {
			out = append(out, n)
		}
	}
	return out
}
