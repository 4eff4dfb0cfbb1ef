// Package runner решает дни: кэш ответов, замер времени, метрики, трассы и события.
package runner

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/annel0/aoc2024/internal/eventbus"
	"github.com/annel0/aoc2024/internal/input"
	"github.com/annel0/aoc2024/internal/logging"
	"github.com/annel0/aoc2024/internal/metrics"
	"github.com/annel0/aoc2024/internal/observability"
	"github.com/annel0/aoc2024/internal/puzzle"
	"github.com/annel0/aoc2024/internal/storage"
)

var (
	// ErrEmptyInput пустой входной текст
	ErrEmptyInput = errors.New("runner: empty input")
	// ErrSolverPanic решение упало с паникой
	ErrSolverPanic = errors.New("runner: solver panic")
)

// Options зависимости Runner. Все поля необязательны.
type Options struct {
	Store   storage.AnswerStore         // кэш ответов, при nil без кэша
	Bus     eventbus.EventBus           // шина событий, при nil без событий
	Metrics *metrics.SolveMetrics       // при nil без метрик
	Process *metrics.ProcessMetrics     // показатели процесса для отчёта
	Params  func(day int) puzzle.Params // параметры дня из конфигурации
	Tracer  oteltrace.Tracer            // по умолчанию observability.Tracer()
	Source  string                      // источник событий: cli, rest
}

// Runner решает дни из регистра puzzle
type Runner struct {
	opts   Options
	logger *logging.Logger
}

// Request запрос на решение
type Request struct {
	Day   int
	Parts []int // пустой список: обе части
	Text  string
	// Params переопределяют параметры дня из конфигурации
	Params puzzle.Params
}

// PartResult результат одной части
type PartResult struct {
	Part     int           `json:"part"`
	Answer   int           `json:"answer"`
	Duration time.Duration `json:"duration_ns"`
	Cached   bool          `json:"cached"`
}

// Report итог запуска
type Report struct {
	RunID   string            `json:"run_id"`
	Day     int               `json:"day"`
	Title   string            `json:"title"`
	Digest  string            `json:"digest"`
	Parts   []PartResult      `json:"parts"`
	Total   time.Duration     `json:"total_ns"`
	Process *metrics.Snapshot `json:"process,omitempty"`
}

// New создаёт Runner
func New(opts Options) *Runner {
	if opts.Tracer == nil {
		opts.Tracer = observability.Tracer()
	}
	if opts.Source == "" {
		opts.Source = "cli"
	}
	return &Runner{opts: opts, logger: logging.GetRunnerLogger()}
}

// Solve решает указанные части дня для текста
func (r *Runner) Solve(ctx context.Context, day int, parts []int, text string) (*Report, error) {
	return r.Run(ctx, Request{Day: day, Parts: parts, Text: text})
}

// Run решает запрос. При ошибке части возвращается отчёт по уже решённым частям.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	sol, err := puzzle.Get(req.Day)
	if err != nil {
		return nil, err
	}

	parts := req.Parts
	if len(parts) == 0 {
		parts = []int{1, 2}
	}
	for _, p := range parts {
		if _, err := sol.Part(p); err != nil {
			return nil, err
		}
	}

	text := input.Normalize(req.Text)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	params := r.params(req)
	report := &Report{
		RunID:  uuid.NewString(),
		Day:    sol.Day,
		Title:  sol.Title,
		Digest: digest(text, params),
	}

	ctx, span := r.opts.Tracer.Start(ctx, "solve.day", oteltrace.WithAttributes(
		attribute.Int("aoc.day", sol.Day),
		attribute.String("aoc.run_id", report.RunID),
	))
	defer span.End()

	start := time.Now()
	for _, p := range parts {
		res, err := r.solvePart(ctx, sol, p, text, params, report)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.publish(ctx, eventbus.TypeSolveFailed, report.RunID, eventbus.SolveEvent{
				Day: sol.Day, Part: p, Error: err.Error(),
			})
			report.Total = time.Since(start)
			return report, fmt.Errorf("day %d part %d: %w", sol.Day, p, err)
		}
		report.Parts = append(report.Parts, res)
		r.publish(ctx, eventbus.TypeAnswerSolved, report.RunID, eventbus.SolveEvent{
			Day: sol.Day, Part: p, Answer: res.Answer, Duration: res.Duration, Cached: res.Cached,
		})
	}
	report.Total = time.Since(start)

	if r.opts.Process != nil {
		snap := r.opts.Process.Snapshot()
		report.Process = &snap
	}

	r.logger.Info("✅ День %d (%s) решён за %s, run=%s", sol.Day, sol.Title, report.Total, report.RunID)
	return report, nil
}

func (r *Runner) solvePart(ctx context.Context, sol puzzle.Solution, part int, text string, params puzzle.Params, report *Report) (PartResult, error) {
	ctx, span := r.opts.Tracer.Start(ctx, "solve.part", oteltrace.WithAttributes(
		attribute.Int("aoc.day", sol.Day),
		attribute.Int("aoc.part", part),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return PartResult{}, err
	}

	key := storage.Key{Day: sol.Day, Part: part, Digest: report.Digest}
	if r.opts.Store != nil {
		// Кэш не обязателен: ошибки чтения только логируются
		ans, ok, err := r.opts.Store.Load(ctx, key)
		switch {
		case err != nil:
			r.logger.Warn("Кэш недоступен для %s: %v", key, err)
		case ok:
			span.SetAttributes(attribute.Bool("aoc.cached", true))
			if r.opts.Metrics != nil {
				r.opts.Metrics.ObserveCacheHit(sol.Day, part)
			}
			r.logger.Debug("Ответ %s взят из кэша (run=%s)", key, ans.RunID)
			return PartResult{Part: part, Answer: ans.Value, Duration: ans.Duration, Cached: true}, nil
		}
	}

	fn, _ := sol.Part(part)
	start := time.Now()
	value, err := call(fn, text, params)
	elapsed := time.Since(start)
	if err != nil {
		if r.opts.Metrics != nil {
			r.opts.Metrics.ObserveFailure(sol.Day, part, reason(err))
		}
		r.logger.Warn("❌ День %d часть %d: %v", sol.Day, part, err)
		return PartResult{}, err
	}

	if r.opts.Metrics != nil {
		r.opts.Metrics.ObserveSolved(sol.Day, part, elapsed)
	}
	span.SetAttributes(attribute.Int("aoc.answer", value))

	if r.opts.Store != nil {
		ans := storage.Answer{Value: value, Duration: elapsed, SolvedAt: time.Now().UTC(), RunID: report.RunID}
		if err := r.opts.Store.Save(ctx, key, ans); err != nil {
			r.logger.Warn("Не удалось сохранить %s: %v", key, err)
		}
	}

	r.logger.Debug("День %d часть %d = %d за %s", sol.Day, part, value, elapsed)
	return PartResult{Part: part, Answer: value, Duration: elapsed}, nil
}

// call вызывает решение, превращая панику в ошибку
func call(fn puzzle.Part, text string, params puzzle.Params) (value int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrSolverPanic, rec)
		}
	}()
	return fn(text, params)
}

func reason(err error) string {
	switch {
	case errors.Is(err, puzzle.ErrMalformedInput):
		return "malformed"
	case errors.Is(err, ErrSolverPanic):
		return "panic"
	default:
		return "error"
	}
}

// params параметры конфигурации, поверх которых лежат параметры запроса
func (r *Runner) params(req Request) puzzle.Params {
	var base puzzle.Params
	if r.opts.Params != nil {
		base = r.opts.Params(req.Day)
	}
	if len(req.Params) == 0 {
		return base
	}
	out := make(puzzle.Params, len(base)+len(req.Params))
	maps.Copy(out, base)
	maps.Copy(out, req.Params)
	return out
}

// digest ключ кэша: текст и, если заданы, параметры в порядке имён
func digest(text string, params puzzle.Params) string {
	if len(params) == 0 {
		return input.Digest(text)
	}
	var b strings.Builder
	b.WriteString(text)
	for _, k := range slices.Sorted(maps.Keys(params)) {
		b.WriteString("\x00" + k + "=" + strconv.Itoa(params[k]))
	}
	return input.Digest(b.String())
}

func (r *Runner) publish(ctx context.Context, eventType, runID string, payload eventbus.SolveEvent) {
	if r.opts.Bus == nil {
		return
	}
	ev, err := eventbus.NewEnvelope(r.opts.Source, eventType, runID, payload)
	if err == nil {
		err = r.opts.Bus.Publish(ctx, ev)
	}
	if err != nil {
		r.logger.Warn("Событие %s не опубликовано: %v", eventType, err)
	}
}
