// Package app собирает зависимости приложения из конфигурации.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/annel0/aoc2024/internal/api"
	"github.com/annel0/aoc2024/internal/auth"
	"github.com/annel0/aoc2024/internal/config"
	"github.com/annel0/aoc2024/internal/eventbus"
	"github.com/annel0/aoc2024/internal/input"
	"github.com/annel0/aoc2024/internal/logging"
	"github.com/annel0/aoc2024/internal/metrics"
	"github.com/annel0/aoc2024/internal/notify"
	"github.com/annel0/aoc2024/internal/observability"
	"github.com/annel0/aoc2024/internal/runner"
	"github.com/annel0/aoc2024/internal/storage"
)

// App зависимости одного процесса: кэш, шина, метрики, трассы и runner
type App struct {
	Config   *config.Config
	Inputs   *input.Provider
	Store    storage.AnswerStore // nil, если кэш выключен
	Bus      eventbus.EventBus
	Registry *prometheus.Registry
	Process  *metrics.ProcessMetrics
	Runner   *runner.Runner

	exporter          *eventbus.MetricsExporter
	notifier          *notify.Notifier
	shutdownTelemetry observability.Shutdown
}

// ConfigureLogging применяет уровень и каталог логов из конфигурации
func ConfigureLogging(cfg config.LoggingConfig) error {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	if cfg.Dir != "" {
		logging.SetLogDir(cfg.Dir)
	}
	logging.SetDefaultLevel(level)
	logging.GetLoggerManager().SetLevel(level)
	return nil
}

// StorageOptions параметры хранилища ответов из конфигурации
func StorageOptions(cfg config.CacheConfig) storage.Options {
	return storage.Options{
		Backend:   storage.Backend(cfg.Backend),
		Path:      cfg.Path,
		RedisAddr: cfg.RedisAddr,
		MySQLDSN:  cfg.MySQLDSN,
		MongoURI:  cfg.MongoURI,
	}
}

// New собирает приложение. source попадает в события шины (cli, rest).
// При ошибке уже созданные ресурсы закрываются.
func New(ctx context.Context, cfg *config.Config, source string) (_ *App, err error) {
	a := &App{
		Config:   cfg,
		Inputs:   input.NewProvider(cfg.Input.Dir),
		Registry: prometheus.NewRegistry(),
		Process:  metrics.NewProcessMetrics(),
	}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a.shutdownTelemetry, err = observability.InitTelemetry(ctx, observability.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	if cfg.Cache.Enabled {
		a.Store, err = storage.Open(ctx, StorageOptions(cfg.Cache))
		if err != nil {
			return nil, fmt.Errorf("answer store: %w", err)
		}
	}

	if cfg.EventBus.NATSURL != "" {
		a.Bus, err = eventbus.NewJetStreamBus(cfg.EventBus.NATSURL, cfg.EventBus.Stream, cfg.EventBus.Retention)
		if err != nil {
			return nil, fmt.Errorf("event bus: %w", err)
		}
	} else {
		a.Bus = eventbus.NewMemoryBus(cfg.EventBus.Buffer)
	}
	if _, err = eventbus.StartLoggingListener(a.Bus); err != nil {
		return nil, fmt.Errorf("event bus listener: %w", err)
	}

	if len(cfg.Webhooks) > 0 {
		a.notifier = notify.NewNotifier(cfg.Webhooks)
		if _, err = a.notifier.Attach(ctx, a.Bus); err != nil {
			return nil, fmt.Errorf("webhooks: %w", err)
		}
	}

	a.exporter = eventbus.NewMetricsExporter(a.Bus, a.Registry)
	a.exporter.Start(time.Second)

	a.Runner = runner.New(runner.Options{
		Store:   a.Store,
		Bus:     a.Bus,
		Metrics: metrics.NewSolveMetrics(a.Registry),
		Process: a.Process,
		Params:  cfg.Params,
		Source:  source,
	})
	return a, nil
}

// Tokens менеджер JWT из конфигурации; nil, если секрет не задан
func (a *App) Tokens() (*auth.TokenManager, error) {
	if a.Config.Server.JWTSecret == "" {
		return nil, nil
	}
	return auth.NewTokenManager(a.Config.Server.JWTSecret, a.Config.Server.TokenTTL)
}

// RestServer REST сервер поверх runner приложения
func (a *App) RestServer() (*api.RestServer, error) {
	tokens, err := a.Tokens()
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	return api.NewRestServer(api.Config{
		Port:     fmt.Sprintf(":%d", a.Config.Server.GetRESTPort()),
		Runner:   a.Runner,
		Tokens:   tokens,
		Bus:      a.Bus,
		Process:  a.Process,
		Registry: a.Registry,
	}), nil
}

// Close закрывает ресурсы в обратном порядке и возвращает все ошибки
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Bus != nil {
		// Close шины доставляет оставшиеся события подписчикам
		errs = append(errs, a.Bus.Close())
	}
	if a.notifier != nil {
		errs = append(errs, a.notifier.Shutdown(ctx))
	}
	if a.exporter != nil {
		a.exporter.Stop()
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.shutdownTelemetry != nil {
		errs = append(errs, a.shutdownTelemetry(ctx))
	}
	return errors.Join(errs...)
}
