package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage é uma mensagem do histórico de uma sessão. Mensagens nunca são
// alteradas depois de adicionadas.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Blocks    []Block   `json:"blocks,omitempty"`
	HTML      string    `json:"html,omitempty"`
	Failed    bool      `json:"failed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSessionState string

const (
	ChatSessionIdle             ChatSessionState = "idle"
	ChatSessionAwaitingResponse ChatSessionState = "awaiting_response"
)

// ChatTranscript é a visão de uma sessão devolvida pela API
type ChatTranscript struct {
	SessionID string           `json:"sessionId"`
	Owner     string           `json:"owner,omitempty"`
	State     ChatSessionState `json:"state"`
	Messages  []ChatMessage    `json:"messages"`
	CreatedAt time.Time        `json:"createdAt"`
}
