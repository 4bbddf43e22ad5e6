package chatting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/insights-assistant-api/infrastructure/repository"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/notifying"
	"github.com/vfg2006/insights-assistant-api/pkg/log"
)

const (
	ChatErrorTitle       = "Chat Error"
	ChatErrorDescription = "Failed to get a response from the AI assistant. Please try again."
)

// Turn é o resultado de uma pergunta: a mensagem do usuário e a do assistente
type Turn struct {
	Question domain.ChatMessage `json:"question"`
	Reply    domain.ChatMessage `json:"reply"`
	Failed   bool               `json:"failed"`
}

type Chatter interface {
	CreateSession(ctx context.Context, owner string) domain.ChatTranscript
	Transcript(ctx context.Context, sessionID, owner string) (domain.ChatTranscript, error)
	Send(ctx context.Context, sessionID, owner string, filter domain.SnapshotFilter, question string) (Turn, error)
}

type Service struct {
	assistant assistant.Assistant
	archive   repository.TranscriptRepository
	notifier  notifying.Notifier

	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewService(a assistant.Assistant, archive repository.TranscriptRepository, notifier notifying.Notifier) *Service {
	return &Service{
		assistant: a,
		archive:   archive,
		notifier:  notifier,
		sessions:  make(map[string]*Session),
		now:       time.Now,
	}
}

func (s *Service) CreateSession(ctx context.Context, owner string) domain.ChatTranscript {
	session := NewSession(uuid.New().String(), owner, s.now)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	transcript := session.Transcript()
	for _, msg := range transcript.Messages {
		s.archiveMessage(ctx, msg)
	}

	log.ForContext(ctx).WithField("session_id", session.ID()).Info("Sessão de chat criada")
	return transcript
}

func (s *Service) Transcript(ctx context.Context, sessionID, owner string) (domain.ChatTranscript, error) {
	session, err := s.session(ctx, sessionID, owner)
	if err != nil {
		return domain.ChatTranscript{}, err
	}
	return session.Transcript(), nil
}

// Send executa um turno completo. Falhas de geração não são devolvidas como
// erro: viram a mensagem de desculpas e uma notificação, e a sessão continua
// utilizável.
func (s *Service) Send(ctx context.Context, sessionID, owner string, filter domain.SnapshotFilter, question string) (Turn, error) {
	session, err := s.session(ctx, sessionID, owner)
	if err != nil {
		return Turn{}, err
	}

	userMsg, err := session.Begin(question)
	if err != nil {
		return Turn{}, err
	}
	s.archiveMessage(ctx, userMsg)

	logger := log.ForContext(ctx).WithField("session_id", sessionID)

	reply, genErr := s.assistant.Answer(ctx, filter, userMsg.Content)

	var assistantMsg domain.ChatMessage
	if genErr != nil {
		logger.WithError(genErr).Error("Falha ao gerar resposta do chat")
		assistantMsg, err = session.Fail()
		s.notifier.Notify(ctx, domain.NotificationError, ChatErrorTitle, ChatErrorDescription)
	} else {
		assistantMsg, err = session.Complete(reply.Raw, reply.Blocks, reply.HTML)
	}
	if err != nil {
		return Turn{}, err
	}
	s.archiveMessage(ctx, assistantMsg)

	return Turn{Question: userMsg, Reply: assistantMsg, Failed: genErr != nil}, nil
}

func (s *Service) session(ctx context.Context, sessionID, owner string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		var err error
		if session, err = s.restore(ctx, sessionID, owner); err != nil {
			return nil, err
		}
	}

	if session.Owner() != "" && session.Owner() != owner {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// restore traz de volta uma sessão que só existe no arquivo, por exemplo
// depois de um restart. A sessão restaurada passa a pertencer a quem pediu.
func (s *Service) restore(ctx context.Context, sessionID, owner string) (*Session, error) {
	if s.archive == nil || sessionID == "" {
		return nil, ErrSessionNotFound
	}

	logger := log.ForContext(ctx).WithField("session_id", sessionID)

	archived, err := s.archive.ListMessages(ctx, sessionID)
	if err != nil {
		logger.WithError(err).Warn("Falha ao consultar arquivo de conversas")
		return nil, ErrSessionNotFound
	}
	if len(archived) == 0 {
		return nil, ErrSessionNotFound
	}

	restored, added := RestoreSession(sessionID, owner, archived, s.now)

	s.mu.Lock()
	if existing, ok := s.sessions[sessionID]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.sessions[sessionID] = restored
	s.mu.Unlock()

	for _, msg := range added {
		s.archiveMessage(ctx, msg)
	}

	logger.Info("Sessão de chat restaurada do arquivo")
	return restored, nil
}

// archiveMessage nunca interrompe a conversa; falhas só são registradas
func (s *Service) archiveMessage(ctx context.Context, msg domain.ChatMessage) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveMessage(ctx, msg); err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", msg.SessionID).Warn("Falha ao arquivar mensagem")
	}
}
