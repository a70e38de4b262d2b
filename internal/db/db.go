package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gogumamarket/goguma-api/internal/config"
)

// Pool — пул соединений для чтения
var Pool *pgxpool.Pool

// ServicePool — пул с привилегированной учётной записью. Записи через него
// обходят политики доступа на уровне строк, поэтому пользоваться им может
// только код сервисов, работающий в доверенном контексте.
var ServicePool *pgxpool.Pool

// InitDB инициализирует соединения с базой данных
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error

	Pool, err = newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("ошибка при создании пула для чтения: %w", err)
	}

	ServicePool, err = newPool(ctx, cfg.ServiceDatabaseURL)
	if err != nil {
		return fmt.Errorf("ошибка при создании привилегированного пула: %w", err)
	}

	log.Println("✅ Успешное подключение к базе данных")
	return nil
}

func newPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе URL базы данных: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пула соединений: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка при проверке соединения: %w", err)
	}

	return pool, nil
}

// CloseDB закрывает соединения с базой данных
func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
	if ServicePool != nil {
		ServicePool.Close()
	}
}

// GetContext возвращает контекст с таймаутом для запросов к базе данных
func GetContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
