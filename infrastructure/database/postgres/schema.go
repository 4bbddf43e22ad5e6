package postgres

import (
	"context"
	"database/sql"
)

const chatMessagesDDL = `
CREATE TABLE IF NOT EXISTS chat_messages (
	session_id  TEXT        NOT NULL,
	message_id  BIGINT      NOT NULL,
	role        TEXT        NOT NULL,
	content     TEXT        NOT NULL,
	failed      BOOLEAN     NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (session_id, message_id)
)`

const chatMessagesCreatedAtIndex = `
CREATE INDEX IF NOT EXISTS chat_messages_created_at_idx ON chat_messages (created_at)`

var schema = []string{chatMessagesDDL, chatMessagesCreatedAtIndex}

// EnsureSchema cria as tabelas do arquivo de conversas, se ainda não existirem
func EnsureSchema(ctx context.Context, q Queryer) error {
	for _, stmt := range schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Migrate aplica o schema dentro de uma transação
func Migrate(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return EnsureSchema(ctx, tx)
	})
}
