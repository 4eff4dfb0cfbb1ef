package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/annel0/aoc2024/internal/logging"
)

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr      string        // Адрес Redis сервера
	Password  string        // Пароль (пустой если не требуется)
	DB        int           // Номер базы данных
	KeyPrefix string        // Префикс для ключей
	TTL       time.Duration // Время жизни записей, 0 без срока
}

// DefaultRedisConfig возвращает конфигурацию по умолчанию
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:      "localhost:6379",
		KeyPrefix: "aoc:",
	}
}

// RedisAnswerStore хранит ответы в Redis; удобно, когда несколько
// REST-процессов делят один кэш
type RedisAnswerStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration

	mu     sync.RWMutex
	closed bool
}

// NewRedisAnswerStore подключается к Redis и проверяет соединение
func NewRedisAnswerStore(ctx context.Context, config *RedisConfig) (*RedisAnswerStore, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetStorageLogger().Info("🔴 Connected to Redis at %s", config.Addr)
	return &RedisAnswerStore{
		client:    client,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}, nil
}

func (s *RedisAnswerStore) redisKey(key Key) string {
	return s.keyPrefix + key.String()
}

func (s *RedisAnswerStore) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// Load получает ответ из Redis
func (s *RedisAnswerStore) Load(ctx context.Context, key Key) (Answer, bool, error) {
	if err := checkContext(ctx); err != nil {
		return Answer{}, false, err
	}
	if err := s.ready(); err != nil {
		return Answer{}, false, err
	}

	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Answer{}, false, nil
	}
	if err != nil {
		return Answer{}, false, fmt.Errorf("failed to get answer: %w", err)
	}

	var answer Answer
	if err := json.Unmarshal(data, &answer); err != nil {
		return Answer{}, false, fmt.Errorf("failed to unmarshal answer: %w", err)
	}
	return answer, true, nil
}

// Save записывает ответ в Redis
func (s *RedisAnswerStore) Save(ctx context.Context, key Key, answer Answer) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	if err := s.client.Set(ctx, s.redisKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

// Delete удаляет ответ из Redis
func (s *RedisAnswerStore) Delete(ctx context.Context, key Key) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	return nil
}

// Close закрывает соединение
func (s *RedisAnswerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}
