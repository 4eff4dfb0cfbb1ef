package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MariaAnswerStore реализует AnswerStore для MariaDB/MySQL.
// Использует таблицу answers с составным первичным ключом (day, part, digest).
type MariaAnswerStore struct {
	db *sql.DB
}

// NewMariaAnswerStore подключается к базе и создает таблицу, если её нет.
//
// Параметры:
//
//	dsn - строка подключения (user:pass@tcp(host:port)/dbname?parseTime=true)
func NewMariaAnswerStore(ctx context.Context, dsn string) (*MariaAnswerStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MariaDB: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось проверить соединение с MariaDB: %w", err)
	}

	store := &MariaAnswerStore{db: db}
	if err := store.createTable(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать таблицу: %w", err)
	}

	return store, nil
}

// createTable создает таблицу answers, если она не существует.
func (s *MariaAnswerStore) createTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS answers (
			day         TINYINT      NOT NULL,
			part        TINYINT      NOT NULL,
			digest      CHAR(64)     NOT NULL,
			value       BIGINT       NOT NULL,
			duration_ns BIGINT       NOT NULL,
			run_id      VARCHAR(36)  NOT NULL,
			solved_at   TIMESTAMP(6) NOT NULL,
			PRIMARY KEY (day, part, digest)
		) ENGINE=InnoDB
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ошибка создания таблицы answers: %w", err)
	}
	return nil
}

// Load загружает ответ из базы данных.
func (s *MariaAnswerStore) Load(ctx context.Context, key Key) (Answer, bool, error) {
	query := `SELECT value, duration_ns, run_id, solved_at FROM answers WHERE day = ? AND part = ? AND digest = ?`

	var (
		answer   Answer
		duration int64
	)
	err := s.db.QueryRowContext(ctx, query, key.Day, key.Part, key.Digest).
		Scan(&answer.Value, &duration, &answer.RunID, &answer.SolvedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Answer{}, false, nil
	}
	if errors.Is(err, sql.ErrConnDone) {
		return Answer{}, false, ErrStoreClosed
	}
	if err != nil {
		return Answer{}, false, fmt.Errorf("ошибка загрузки ответа %s: %w", key, err)
	}

	answer.Duration = time.Duration(duration)
	return answer, true, nil
}

// Save сохраняет ответ.
// Использует INSERT ... ON DUPLICATE KEY UPDATE для перезаписи существующих записей.
func (s *MariaAnswerStore) Save(ctx context.Context, key Key, answer Answer) error {
	if err := key.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO answers (day, part, digest, value, duration_ns, run_id, solved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			value = VALUES(value),
			duration_ns = VALUES(duration_ns),
			run_id = VALUES(run_id),
			solved_at = VALUES(solved_at)
	`

	_, err := s.db.ExecContext(ctx, query,
		key.Day, key.Part, key.Digest,
		answer.Value, answer.Duration.Nanoseconds(), answer.RunID, answer.SolvedAt.UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения ответа %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ответ.
func (s *MariaAnswerStore) Delete(ctx context.Context, key Key) error {
	query := `DELETE FROM answers WHERE day = ? AND part = ? AND digest = ?`

	if _, err := s.db.ExecContext(ctx, query, key.Day, key.Part, key.Digest); err != nil {
		return fmt.Errorf("ошибка удаления ответа %s: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с базой данных.
func (s *MariaAnswerStore) Close() error {
	return s.db.Close()
}
