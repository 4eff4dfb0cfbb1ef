package storage

import (
	"context"
	"sync"
)

// MemoryAnswerStore реализует AnswerStore в памяти.
// Используется по умолчанию и в тестах.
// ВНИМАНИЕ: Данные теряются при перезапуске процесса!
type MemoryAnswerStore struct {
	mu     sync.RWMutex
	data   map[Key]Answer
	closed bool
}

// NewMemoryAnswerStore создает новое хранилище ответов в памяти.
func NewMemoryAnswerStore() *MemoryAnswerStore {
	return &MemoryAnswerStore{
		data: make(map[Key]Answer),
	}
}

// Load загружает ответ из памяти.
func (s *MemoryAnswerStore) Load(ctx context.Context, key Key) (Answer, bool, error) {
	if err := checkContext(ctx); err != nil {
		return Answer{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Answer{}, false, ErrStoreClosed
	}
	answer, exists := s.data[key]
	return answer, exists, nil
}

// Save сохраняет ответ в памяти.
func (s *MemoryAnswerStore) Save(ctx context.Context, key Key, answer Answer) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.data[key] = answer
	return nil
}

// Delete удаляет ответ из памяти.
func (s *MemoryAnswerStore) Delete(ctx context.Context, key Key) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	delete(s.data, key)
	return nil
}

// Close помечает хранилище закрытым и освобождает данные.
func (s *MemoryAnswerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	return nil
}

// Count возвращает количество сохраненных ответов (для отладки).
func (s *MemoryAnswerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
