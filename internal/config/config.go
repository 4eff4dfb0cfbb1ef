package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/annel0/aoc2024/internal/notify"
	"github.com/annel0/aoc2024/internal/puzzle"
)

// ConfigEnv переменная окружения с путём к YAML файлу конфигурации
const ConfigEnv = "AOC_CONFIG"

// Config корневая структура конфигурации приложения.
// Значения берутся по очереди: умолчания, YAML файл, переменные окружения.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Cache     CacheConfig     `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	EventBus  EventBusConfig  `yaml:"eventbus"`

	// Webhooks получатели событий о решениях
	Webhooks []notify.Webhook `yaml:"webhooks"`

	// Days параметры решений по дням, например размеры поля дня 14
	Days map[int]map[string]int `yaml:"days"`
}

type InputConfig struct {
	Dir string `yaml:"dir" env:"AOC_INPUT_DIR"`
}

// CacheConfig кэш ответов. Пустой Backend выбирает badger при заданном Path,
// иначе кэш в памяти процесса.
type CacheConfig struct {
	Enabled   bool   `yaml:"enabled" env:"AOC_CACHE_ENABLED"`
	Backend   string `yaml:"backend" env:"AOC_CACHE_BACKEND"` // memory, badger, redis, mysql, mongo
	Path      string `yaml:"path" env:"AOC_CACHE_PATH"`
	RedisAddr string `yaml:"redis_addr" env:"AOC_REDIS_ADDR"`
	MySQLDSN  string `yaml:"mysql_dsn" env:"AOC_MYSQL_DSN"`
	MongoURI  string `yaml:"mongo_uri" env:"AOC_MONGO_URI"`
}

type ServerConfig struct {
	RESTPort int `yaml:"rest_port" env:"AOC_REST_PORT"`
	// JWTSecret base64 секрет; если задан, POST /solve требует токен
	JWTSecret string        `yaml:"jwt_secret" env:"AOC_JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"AOC_TOKEN_TTL"`
}

// EventBusConfig шина событий. Пустой NATSURL означает шину в памяти.
type EventBusConfig struct {
	NATSURL   string        `yaml:"nats_url" env:"AOC_NATS_URL"`
	Stream    string        `yaml:"stream" env:"AOC_NATS_STREAM"`
	Retention time.Duration `yaml:"retention" env:"AOC_NATS_RETENTION"`
	Buffer    int           `yaml:"buffer" env:"AOC_EVENT_BUFFER"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"AOC_LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"AOC_LOG_DIR"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" env:"AOC_TELEMETRY_ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"AOC_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"AOC_SERVICE_NAME"`
}

// Default конфигурация без файла и окружения
func Default() *Config {
	return &Config{
		Input:  InputConfig{Dir: "inputs"},
		Cache:  CacheConfig{Enabled: true},
		Server: ServerConfig{RESTPort: 8088, TokenTTL: 24 * time.Hour},
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Telemetry: TelemetryConfig{
			Endpoint:    "localhost:4318",
			ServiceName: "aoc2024",
		},
		EventBus: EventBusConfig{
			Stream:    "AOC",
			Retention: 7 * 24 * time.Hour,
			Buffer:    1024,
		},
	}
}

// GetRESTPort возвращает REST API порт, 8088 если не задан
func (s *ServerConfig) GetRESTPort() int {
	if s.RESTPort > 0 {
		return s.RESTPort
	}
	return 8088
}

// Params параметры дня; nil, если для дня ничего не задано
func (c *Config) Params(day int) puzzle.Params {
	p, ok := c.Days[day]
	if !ok {
		return nil
	}
	return puzzle.Params(p)
}

// Load читает конфигурацию.
// Если path == "", путь берётся из AOC_CONFIG; без файла используются умолчания.
// Переменные окружения AOC_* применяются поверх файла.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
