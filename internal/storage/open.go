package storage

import (
	"context"
	"fmt"
	"strings"
)

// Backend тип хранилища ответов
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
	BackendRedis  Backend = "redis"
	BackendMaria  Backend = "mysql"
	BackendMongo  Backend = "mongo"
)

// Options выбор и параметры хранилища. Пустой Backend означает
// badger, если задан Path, иначе память.
type Options struct {
	Backend   Backend
	Path      string
	RedisAddr string
	MySQLDSN  string
	MongoURI  string
}

func (o Options) backend() Backend {
	if o.Backend != "" {
		return Backend(strings.ToLower(string(o.Backend)))
	}
	if o.Path != "" {
		return BackendBadger
	}
	return BackendMemory
}

// Open создаёт хранилище по параметрам
func Open(ctx context.Context, o Options) (AnswerStore, error) {
	switch b := o.backend(); b {
	case BackendMemory:
		return NewMemoryAnswerStore(), nil
	case BackendBadger:
		if o.Path == "" {
			return nil, fmt.Errorf("storage: badger backend needs a path")
		}
		return NewBadgerAnswerStore(o.Path)
	case BackendRedis:
		cfg := DefaultRedisConfig()
		if o.RedisAddr != "" {
			cfg.Addr = o.RedisAddr
		}
		return NewRedisAnswerStore(ctx, cfg)
	case BackendMaria:
		if o.MySQLDSN == "" {
			return nil, fmt.Errorf("storage: mysql backend needs a DSN")
		}
		return NewMariaAnswerStore(ctx, o.MySQLDSN)
	case BackendMongo:
		return NewMongoAnswerStore(ctx, MongoConfig{URI: o.MongoURI})
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", b)
	}
}
