package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/aoc2024/internal/auth"
	"github.com/annel0/aoc2024/internal/config"
	_ "github.com/annel0/aoc2024/internal/days"
	"github.com/annel0/aoc2024/internal/logging"
	"github.com/annel0/aoc2024/internal/storage"
)

const day1Example = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"

func TestNewMemory(t *testing.T) {
	cfg := config.Default()
	ctx := context.Background()

	a, err := New(ctx, cfg, "cli")
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryAnswerStore{}, a.Store)

	report, err := a.Runner.Solve(ctx, 1, nil, day1Example)
	require.NoError(t, err)
	assert.Equal(t, 11, report.Parts[0].Answer)
	assert.Equal(t, 31, report.Parts[1].Answer)

	require.NoError(t, a.Close(ctx))
	assert.Equal(t, uint64(2), a.Bus.Metrics().Published)
}

func TestNewBadgerPersistsAnswers(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Path = t.TempDir()
	ctx := context.Background()

	a, err := New(ctx, cfg, "cli")
	require.NoError(t, err)
	_, err = a.Runner.Solve(ctx, 1, []int{1}, day1Example)
	require.NoError(t, err)
	require.NoError(t, a.Close(ctx))

	// новый процесс видит ответ в кэше
	b, err := New(ctx, cfg, "cli")
	require.NoError(t, err)
	defer b.Close(ctx)

	report, err := b.Runner.Solve(ctx, 1, []int{1}, day1Example)
	require.NoError(t, err)
	assert.True(t, report.Parts[0].Cached)
	assert.Equal(t, 11, report.Parts[0].Answer)
}

func TestNewCacheDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Enabled = false

	a, err := New(context.Background(), cfg, "cli")
	require.NoError(t, err)
	defer a.Close(context.Background())
	assert.Nil(t, a.Store)
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = "floppy"

	_, err := New(context.Background(), cfg, "cli")
	assert.ErrorContains(t, err, "answer store")
}

func TestTokens(t *testing.T) {
	cfg := config.Default()
	a, err := New(context.Background(), cfg, "rest")
	require.NoError(t, err)
	defer a.Close(context.Background())

	tokens, err := a.Tokens()
	require.NoError(t, err)
	assert.Nil(t, tokens)

	secret, err := auth.GenerateSecureSecret()
	require.NoError(t, err)
	cfg.Server.JWTSecret = secret
	tokens, err = a.Tokens()
	require.NoError(t, err)
	require.NotNil(t, tokens)

	rs, err := a.RestServer()
	require.NoError(t, err)
	assert.NotNil(t, rs.Handler())

	cfg.Server.JWTSecret = "short"
	_, err = a.RestServer()
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	defer logging.SetDefaultLevel(logging.INFO)
	require.NoError(t, ConfigureLogging(config.LoggingConfig{Level: "debug"}))
	assert.Error(t, ConfigureLogging(config.LoggingConfig{Level: "loud"}))
}
