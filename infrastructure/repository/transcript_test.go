package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

func TestBuildSaveMessage(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	msg := domain.ChatMessage{
		ID:        2,
		SessionID: "s-1",
		Role:      domain.ChatRoleUser,
		Content:   "How is revenue?",
		Timestamp: ts,
	}

	query, args, err := buildSaveMessage(msg)

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO chat_messages (session_id,message_id,role,content,failed,created_at) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (session_id, message_id) DO NOTHING",
		query)
	assert.Equal(t, []any{"s-1", int64(2), "user", "How is revenue?", false, ts}, args)
}

func TestBuildListMessages(t *testing.T) {
	query, args, err := buildListMessages("s-1")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT session_id, message_id, role, content, failed, created_at FROM chat_messages WHERE session_id = $1 ORDER BY message_id ASC",
		query)
	assert.Equal(t, []any{"s-1"}, args)
}

func TestMemoryTranscriptRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTranscriptRepository()

	require.NoError(t, repo.SaveMessage(ctx, domain.ChatMessage{ID: 1, SessionID: "a", Role: domain.ChatRoleAssistant, Content: "hello"}))
	require.NoError(t, repo.SaveMessage(ctx, domain.ChatMessage{ID: 2, SessionID: "a", Role: domain.ChatRoleUser, Content: "hi"}))
	require.NoError(t, repo.SaveMessage(ctx, domain.ChatMessage{ID: 2, SessionID: "a", Role: domain.ChatRoleUser, Content: "duplicated"}))
	require.NoError(t, repo.SaveMessage(ctx, domain.ChatMessage{ID: 1, SessionID: "b", Role: domain.ChatRoleAssistant, Content: "other"}))

	messages, err := repo.ListMessages(ctx, "a")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, "hi", messages[1].Content)

	empty, err := repo.ListMessages(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
