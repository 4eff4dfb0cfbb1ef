package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStoreClosed операция над закрытым хранилищем
var ErrStoreClosed = errors.New("storage: store is closed")

// Key идентифицирует ответ: день, часть и дайджест входного текста.
// Разные входы одного дня кэшируются независимо.
type Key struct {
	Day    int    `json:"day" bson:"day"`
	Part   int    `json:"part" bson:"part"`
	Digest string `json:"digest" bson:"digest"`
}

// String компактная запись ключа, используется как ключ в Badger и Redis
func (k Key) String() string {
	return fmt.Sprintf("answer:%02d:%d:%s", k.Day, k.Part, k.Digest)
}

// Validate проверяет, что ключ пригоден для сохранения
func (k Key) Validate() error {
	if k.Day <= 0 {
		return fmt.Errorf("недействительный день: %d", k.Day)
	}
	if k.Part != 1 && k.Part != 2 {
		return fmt.Errorf("недействительная часть: %d", k.Part)
	}
	if k.Digest == "" {
		return errors.New("пустой дайджест входа")
	}
	return nil
}

// Answer сохранённый ответ одной части
type Answer struct {
	Value    int           `json:"value" bson:"value"`
	Duration time.Duration `json:"duration" bson:"duration"`
	SolvedAt time.Time     `json:"solved_at" bson:"solved_at"`
	RunID    string        `json:"run_id" bson:"run_id"`
}

// AnswerStore определяет интерфейс кэша ответов.
type AnswerStore interface {
	// Load возвращает ответ и true, если он сохранён.
	// Отсутствие ответа не является ошибкой.
	Load(ctx context.Context, key Key) (Answer, bool, error)

	// Save сохраняет ответ, перезаписывая прежний для того же ключа.
	Save(ctx context.Context, key Key, answer Answer) error

	// Delete удаляет ответ. Удаление отсутствующего ключа не является ошибкой.
	Delete(ctx context.Context, key Key) error

	// Close освобождает ресурсы; последующие операции вернут ErrStoreClosed.
	Close() error
}

// checkContext возвращает ошибку контекста, если он уже отменён
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
