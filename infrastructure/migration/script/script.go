// Aplica o schema do arquivo de conversas sem subir a API.
// Uso: DATABASE_URL=... go run ./infrastructure/migration/script
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/insights-assistant-api/infrastructure/database/postgres"
	"github.com/vfg2006/insights-assistant-api/internal/config"
)

const migrationTimeout = 30 * time.Second

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	if cfg.Database.URL == "" {
		logrus.Fatal("DATABASE_URL não configurada")
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}

	var total int64
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM chat_messages").Scan(&total); err != nil {
		logrus.WithError(err).Fatal("Erro ao consultar chat_messages")
	}

	logrus.WithField("messages", total).Info("Migração concluída")
}
