package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"reference-service/pkg/config"
)

// ConnectDB открывает пул к одному хранилищу. name нужен только для логов:
// сервис держит два независимых пула (справочники и авторизация).
func ConnectDB(ctx context.Context, name string, cfg config.PostgresConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("некорректный DSN для %s: %w", name, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пула соединений к %s: %w", name, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось пинговать %s: %w", name, err)
	}

	logger.Info("✅ Подключено к PostgreSQL", zap.String("store", name))
	return dbpool, nil
}
