package chatting

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/insights-assistant-api/internal/domain"
	"github.com/vfg2006/insights-assistant-api/internal/usecases/assistant"
)

const (
	GreetingMessage = "Hello! I'm your AI business assistant. Ask me anything about your sales, inventory, customers or cash flow."
	ApologyMessage  = "I'm sorry, I couldn't generate a response right now. Please try again in a moment."
)

// Session é a máquina de estados de uma conversa: Idle ou AwaitingResponse.
// Toda chamada a Begin é resolvida por exatamente uma mensagem do assistente,
// via Complete ou Fail.
type Session struct {
	mu        sync.Mutex
	id        string
	owner     string
	state     domain.ChatSessionState
	messages  []domain.ChatMessage
	nextID    int64
	createdAt time.Time
	now       func() time.Time
}

func NewSession(id, owner string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}

	s := &Session{
		id:        id,
		owner:     owner,
		state:     domain.ChatSessionIdle,
		createdAt: now(),
		now:       now,
	}
	s.appendLocked(domain.ChatRoleAssistant, GreetingMessage, nil, "", false)

	return s
}

// RestoreSession reconstrói uma sessão a partir das mensagens arquivadas.
// Um turno que ficou sem resposta é fechado com a mensagem de desculpas, que é
// devolvida em added para também ser arquivada.
func RestoreSession(id, owner string, archived []domain.ChatMessage, now func() time.Time) (restored *Session, added []domain.ChatMessage) {
	if now == nil {
		now = time.Now
	}

	s := &Session{
		id:       id,
		owner:    owner,
		state:    domain.ChatSessionIdle,
		messages: append([]domain.ChatMessage(nil), archived...),
		now:      now,
	}
	if len(s.messages) == 0 {
		s.createdAt = now()
		s.appendLocked(domain.ChatRoleAssistant, GreetingMessage, nil, "", false)
		return s, append(added, s.messages[0])
	}

	sort.SliceStable(s.messages, func(i, j int) bool { return s.messages[i].ID < s.messages[j].ID })
	for i := range s.messages {
		rebuildRichText(&s.messages[i])
	}
	s.createdAt = s.messages[0].Timestamp
	s.nextID = s.messages[len(s.messages)-1].ID

	if s.messages[len(s.messages)-1].Role == domain.ChatRoleUser {
		added = append(added, s.appendLocked(domain.ChatRoleAssistant, ApologyMessage, nil, "", true))
	}

	return s, added
}

// rebuildRichText recalcula blocos e HTML, que não são arquivados, das
// respostas geradas. Saudação e desculpas seguem como texto puro.
func rebuildRichText(msg *domain.ChatMessage) {
	if msg.Role != domain.ChatRoleAssistant || msg.Failed || msg.Blocks != nil || msg.Content == GreetingMessage {
		return
	}
	msg.Blocks = assistant.FormatRichText(msg.Content)
	msg.HTML = assistant.RenderHTML(msg.Blocks)
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Owner() string {
	return s.owner
}

func (s *Session) State() domain.ChatSessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin registra a pergunta do usuário antes da chamada de geração
func (s *Session) Begin(question string) (domain.ChatMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ChatMessage{}, ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.ChatSessionAwaitingResponse {
		return domain.ChatMessage{}, ErrSessionBusy
	}

	msg := s.appendLocked(domain.ChatRoleUser, question, nil, "", false)
	s.state = domain.ChatSessionAwaitingResponse
	return msg, nil
}

// Complete adiciona a resposta formatada e volta para Idle
func (s *Session) Complete(raw string, blocks []domain.Block, html string) (domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.ChatSessionAwaitingResponse {
		return domain.ChatMessage{}, ErrNotAwaiting
	}

	msg := s.appendLocked(domain.ChatRoleAssistant, raw, blocks, html, false)
	s.state = domain.ChatSessionIdle
	return msg, nil
}

// Fail adiciona a mensagem fixa de desculpas e volta para Idle
func (s *Session) Fail() (domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.ChatSessionAwaitingResponse {
		return domain.ChatMessage{}, ErrNotAwaiting
	}

	msg := s.appendLocked(domain.ChatRoleAssistant, ApologyMessage, nil, "", true)
	s.state = domain.ChatSessionIdle
	return msg, nil
}

func (s *Session) Transcript() domain.ChatTranscript {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.ChatTranscript{
		SessionID: s.id,
		Owner:     s.owner,
		State:     s.state,
		Messages:  append([]domain.ChatMessage(nil), s.messages...),
		CreatedAt: s.createdAt,
	}
}

func (s *Session) appendLocked(role domain.ChatRole, content string, blocks []domain.Block, html string, failed bool) domain.ChatMessage {
	s.nextID++
	msg := domain.ChatMessage{
		ID:        s.nextID,
		SessionID: s.id,
		Role:      role,
		Content:   content,
		Blocks:    blocks,
		HTML:      html,
		Failed:    failed,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}
