package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/insights-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/insights-assistant-api/internal/domain"
)

const chatMessagesTable = "chat_messages"

// TranscriptRepository arquiva as mensagens das sessões de chat
type TranscriptRepository interface {
	SaveMessage(ctx context.Context, msg domain.ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}

type transcriptRepository struct {
	conn postgres.Queryer
}

func NewTranscriptRepository(conn postgres.Queryer) TranscriptRepository {
	return &transcriptRepository{
		conn: conn,
	}
}

func buildSaveMessage(msg domain.ChatMessage) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(chatMessagesTable).
		Columns("session_id", "message_id", "role", "content", "failed", "created_at").
		Values(msg.SessionID, msg.ID, string(msg.Role), msg.Content, msg.Failed, msg.Timestamp).
		Suffix("ON CONFLICT (session_id, message_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListMessages(sessionID string) (string, []any, error) {
	return squirrel.
		Select("session_id, message_id, role, content, failed, created_at").
		From(chatMessagesTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("message_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *transcriptRepository) SaveMessage(ctx context.Context, msg domain.ChatMessage) error {
	sqlQuery, args, err := buildSaveMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *transcriptRepository) ListMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	sqlQuery, args, err := buildListMessages(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.ChatMessage, 0)
	for rows.Next() {
		var (
			msg  domain.ChatMessage
			role string
		)
		if err := rows.Scan(&msg.SessionID, &msg.ID, &role, &msg.Content, &msg.Failed, &msg.Timestamp); err != nil {
			return nil, err
		}
		msg.Role = domain.ChatRole(role)
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
