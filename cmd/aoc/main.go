package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/aoc2024/internal/app"
	"github.com/annel0/aoc2024/internal/auth"
	"github.com/annel0/aoc2024/internal/config"
	_ "github.com/annel0/aoc2024/internal/days"
	"github.com/annel0/aoc2024/internal/gen"
	"github.com/annel0/aoc2024/internal/input"
	"github.com/annel0/aoc2024/internal/logging"
	"github.com/annel0/aoc2024/internal/puzzle"
)

// Коды выхода
const (
	exitError     = 1
	exitMalformed = 2
	exitUsage     = 64
)

type options struct {
	command    string
	day        int
	part       int
	inputPath  string
	configPath string

	// gen
	kind   string
	width  int
	height int
	seed   int64
	plants int

	// token
	subject  string
	canSolve bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.command, "cmd", "run", "Command: run, list, serve, gen, token, secret")
	fs.IntVar(&o.day, "day", 0, "Day number (run: 0 = all days with inputs)")
	fs.IntVar(&o.part, "part", 0, "Part 1 or 2 (0 = both)")
	fs.StringVar(&o.inputPath, "input", "", "Input file, '-' for stdin (default: input dir from config)")
	fs.StringVar(&o.configPath, "config", "", "YAML config path (default: $AOC_CONFIG)")
	fs.StringVar(&o.kind, "kind", "garden", "gen: garden or heights")
	fs.IntVar(&o.width, "width", 140, "gen: map width")
	fs.IntVar(&o.height, "height", 140, "gen: map height")
	fs.Int64Var(&o.seed, "seed", 1, "gen: noise seed")
	fs.IntVar(&o.plants, "plants", 8, "gen: plant kinds for garden (1..26)")
	fs.StringVar(&o.subject, "subject", "cli", "token: subject")
	fs.BoolVar(&o.canSolve, "solve", true, "token: allow POST /solve")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

func main() {
	if err := logging.InitDefaultLogger("aoc"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	logging.CloseDefaultLogger()
	_ = logging.GetLoggerManager().CloseAll()

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, puzzle.ErrMalformedInput):
		return exitMalformed
	default:
		return exitError
	}
}

var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// Команды без конфигурации
	switch o.command {
	case "list":
		return listDays(stdout)
	case "gen":
		return generate(o, stdout)
	case "secret":
		secret, err := auth.GenerateSecureSecret()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, secret)
		return nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := app.ConfigureLogging(cfg.Logging); err != nil {
		return err
	}

	switch o.command {
	case "run":
		return solve(ctx, cfg, o, stdin, stdout)
	case "serve":
		return serve(ctx, cfg)
	case "token":
		return issueToken(cfg, o, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, o.command)
	}
}

func listDays(w io.Writer) error {
	for _, s := range puzzle.All() {
		fmt.Fprintf(w, "%02d %s\n", s.Day, s.Title)
	}
	return nil
}

func generate(o *options, w io.Writer) error {
	opts := gen.Options{Width: o.width, Height: o.height, Seed: o.seed}
	var (
		text string
		err  error
	)
	switch o.kind {
	case "garden":
		text, err = gen.Garden(opts, o.plants)
	case "heights":
		text, err = gen.Heightmap(opts)
	default:
		return fmt.Errorf("%w: unknown gen kind %q", errUsage, o.kind)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func solve(ctx context.Context, cfg *config.Config, o *options, stdin io.Reader, w io.Writer) error {
	var parts []int
	if o.part != 0 {
		parts = []int{o.part}
	}

	a, err := app.New(ctx, cfg, "cli")
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	if o.day == 0 {
		if o.inputPath != "" {
			return fmt.Errorf("%w: -input needs -day", errUsage)
		}
		return solveAll(ctx, a, parts, w)
	}

	text, err := readInput(a.Inputs, o, stdin)
	if err != nil {
		return err
	}
	report, err := a.Runner.Solve(ctx, o.day, parts, text)
	if report != nil {
		for _, p := range report.Parts {
			fmt.Fprintf(w, "part%d %d\n", p.Part, p.Answer)
		}
	}
	return err
}

// solveAll решает все дни, для которых есть входной файл
func solveAll(ctx context.Context, a *app.App, parts []int, w io.Writer) error {
	var errs []error
	for _, s := range puzzle.All() {
		text, err := a.Inputs.Read(s.Day)
		if errors.Is(err, input.ErrNotFound) {
			logging.Debug("День %d пропущен: нет входа", s.Day)
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}

		report, err := a.Runner.Solve(ctx, s.Day, parts, text)
		if report != nil {
			for _, p := range report.Parts {
				fmt.Fprintf(w, "day%02d part%d %d\n", s.Day, p.Part, p.Answer)
			}
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func readInput(p *input.Provider, o *options, stdin io.Reader) (string, error) {
	switch o.inputPath {
	case "":
		return p.Read(o.day)
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return input.Normalize(string(data)), nil
	default:
		return input.ReadFile(o.inputPath)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	a, err := app.New(ctx, cfg, "rest")
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	rs, err := a.RestServer()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- rs.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info("🛑 Получен сигнал остановки, завершаем работу...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logging.Info("✅ Сервер остановлен")
	return nil
}

func issueToken(cfg *config.Config, o *options, w io.Writer) error {
	if cfg.Server.JWTSecret == "" {
		return fmt.Errorf("%w: server.jwt_secret (AOC_JWT_SECRET) is not set; generate one with -cmd secret", errUsage)
	}
	tokens, err := auth.NewTokenManager(cfg.Server.JWTSecret, cfg.Server.TokenTTL)
	if err != nil {
		return err
	}
	token, err := tokens.Generate(o.subject, o.canSolve)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, token)
	return nil
}
