package chatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

func TestNewSession_Greeting(t *testing.T) {
	s := NewSession("s1", "owner@example.com", fixedNow)

	transcript := s.Transcript()
	require.Len(t, transcript.Messages, 1)
	assert.Equal(t, domain.ChatRoleAssistant, transcript.Messages[0].Role)
	assert.Equal(t, GreetingMessage, transcript.Messages[0].Content)
	assert.Equal(t, domain.ChatSessionIdle, transcript.State)
	assert.Equal(t, "owner@example.com", transcript.Owner)
}

func TestSession_Turns(t *testing.T) {
	tests := []struct {
		name      string
		fail      bool
		wantText  string
		wantError bool
	}{
		{name: "resposta gerada", wantText: "Net profit is up."},
		{name: "falha na geração", fail: true, wantText: ApologyMessage, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("s1", "", fixedNow)

			question, err := s.Begin("  How is profit?  ")
			require.NoError(t, err)
			assert.Equal(t, "How is profit?", question.Content)
			assert.Equal(t, domain.ChatSessionAwaitingResponse, s.State())

			var reply domain.ChatMessage
			if tt.fail {
				reply, err = s.Fail()
			} else {
				reply, err = s.Complete("Net profit is up.", nil, "")
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantText, reply.Content)
			assert.Equal(t, tt.wantError, reply.Failed)
			assert.Equal(t, domain.ChatSessionIdle, s.State())

			messages := s.Transcript().Messages
			require.Len(t, messages, 3)
			assert.Equal(t, domain.ChatRoleUser, messages[1].Role)
			assert.Equal(t, domain.ChatRoleAssistant, messages[2].Role)
			assert.Less(t, messages[1].ID, messages[2].ID)
		})
	}
}

func TestSession_Begin_Errors(t *testing.T) {
	s := NewSession("s1", "", fixedNow)

	_, err := s.Begin("   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)

	_, err = s.Begin("first")
	require.NoError(t, err)

	_, err = s.Begin("second")
	assert.ErrorIs(t, err, ErrSessionBusy)

	// a pergunta recusada não entra no histórico
	assert.Len(t, s.Transcript().Messages, 2)
}

func TestSession_CompleteWhileIdle(t *testing.T) {
	s := NewSession("s1", "", fixedNow)

	_, err := s.Complete("text", nil, "")
	assert.ErrorIs(t, err, ErrNotAwaiting)

	_, err = s.Fail()
	assert.ErrorIs(t, err, ErrNotAwaiting)
}

func TestSession_TranscriptIsCopy(t *testing.T) {
	s := NewSession("s1", "", fixedNow)

	transcript := s.Transcript()
	transcript.Messages[0].Content = "changed"

	assert.Equal(t, GreetingMessage, s.Transcript().Messages[0].Content)
}

func TestRestoreSession(t *testing.T) {
	t.Run("turno completo", func(t *testing.T) {
		archived := []domain.ChatMessage{
			{ID: 1, Role: domain.ChatRoleAssistant, Content: GreetingMessage, Timestamp: fixedNow()},
			{ID: 2, Role: domain.ChatRoleUser, Content: "Hi"},
			{ID: 3, Role: domain.ChatRoleAssistant, Content: "Hello"},
		}

		s, added := RestoreSession("s-1", "", archived, fixedNow)

		assert.Empty(t, added)
		assert.Equal(t, fixedNow(), s.Transcript().CreatedAt)

		msg, err := s.Begin("Next")
		require.NoError(t, err)
		assert.Equal(t, int64(4), msg.ID)
	})

	t.Run("arquivo vazio", func(t *testing.T) {
		s, added := RestoreSession("s-2", "", nil, fixedNow)

		require.Len(t, added, 1)
		assert.Equal(t, GreetingMessage, added[0].Content)
		assert.Len(t, s.Transcript().Messages, 1)
	})

	t.Run("respostas recuperam blocos e html", func(t *testing.T) {
		archived := []domain.ChatMessage{
			{ID: 1, Role: domain.ChatRoleAssistant, Content: GreetingMessage},
			{ID: 2, Role: domain.ChatRoleUser, Content: "Resumo?"},
			{ID: 3, Role: domain.ChatRoleAssistant, Content: "**Vendas**\n\n- **Alta** hoje"},
			{ID: 4, Role: domain.ChatRoleUser, Content: "E o estoque?"},
			{ID: 5, Role: domain.ChatRoleAssistant, Content: ApologyMessage, Failed: true},
		}

		s, added := RestoreSession("s-3", "", archived, fixedNow)
		require.Empty(t, added)

		msgs := s.Transcript().Messages
		require.Len(t, msgs, 5)

		assert.Nil(t, msgs[0].Blocks)
		assert.Empty(t, msgs[0].HTML)

		reply := msgs[2]
		require.Len(t, reply.Blocks, 2)
		assert.Equal(t, domain.BlockHeading, reply.Blocks[0].Kind)
		assert.Equal(t, domain.BlockBulletList, reply.Blocks[1].Kind)
		assert.Equal(t, "<h3>Vendas</h3>\n<ul>\n<li><strong>Alta</strong> hoje</li>\n</ul>\n", reply.HTML)

		assert.Nil(t, msgs[1].Blocks)
		assert.Nil(t, msgs[4].Blocks)
		assert.Empty(t, msgs[4].HTML)
	})
}
