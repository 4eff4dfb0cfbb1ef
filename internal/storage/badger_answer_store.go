package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

// BadgerAnswerStore хранит ответы в BadgerDB, значения сериализуются в JSON.
type BadgerAnswerStore struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerAnswerStore открывает (или создаёт) базу в dataPath/answers
func NewBadgerAnswerStore(dataPath string) (*BadgerAnswerStore, error) {
	dbPath := filepath.Join(dataPath, "answers")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &BadgerAnswerStore{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Path каталог базы
func (s *BadgerAnswerStore) Path() string { return s.dbPath }

// Load читает ответ из BadgerDB
func (s *BadgerAnswerStore) Load(ctx context.Context, key Key) (Answer, bool, error) {
	if err := checkContext(ctx); err != nil {
		return Answer{}, false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if !s.isReady {
		return Answer{}, false, ErrStoreClosed
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key.String()))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return Answer{}, false, nil
	}
	if err != nil {
		return Answer{}, false, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	var answer Answer
	if err := json.Unmarshal(data, &answer); err != nil {
		return Answer{}, false, fmt.Errorf("ошибка десериализации ответа %s: %w", key, err)
	}
	return answer, true, nil
}

// Save записывает ответ в BadgerDB
func (s *BadgerAnswerStore) Save(ctx context.Context, key Key, answer Answer) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if !s.isReady {
		return ErrStoreClosed
	}

	data, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("ошибка сериализации ответа: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key.String()), data)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// Delete удаляет ответ из BadgerDB
func (s *BadgerAnswerStore) Delete(ctx context.Context, key Key) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if !s.isReady {
		return ErrStoreClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key.String()))
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления из BadgerDB: %w", err)
	}
	return nil
}

// Close закрывает базу
func (s *BadgerAnswerStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isReady {
		return nil
	}

	s.isReady = false
	return s.db.Close()
}
