package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/aoc2024/internal/auth"
	"github.com/annel0/aoc2024/internal/days"
	"github.com/annel0/aoc2024/internal/eventbus"
	"github.com/annel0/aoc2024/internal/runner"
	"github.com/annel0/aoc2024/internal/storage"
)

const day1Example = "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"

const day14Example = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T, tokens *auth.TokenManager) *RestServer {
	t.Helper()
	bus := eventbus.NewMemoryBus(16)
	t.Cleanup(func() { _ = bus.Close() })

	return NewRestServer(Config{
		Runner:   runner.New(runner.Options{Store: storage.NewMemoryAnswerStore(), Bus: bus, Source: "rest"}),
		Tokens:   tokens,
		Bus:      bus,
		Registry: prometheus.NewRegistry(),
	})
}

func do(t *testing.T, rs *RestServer, method, target, body string, header map[string]string) (int, response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, req)

	var resp response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestHealth(t *testing.T) {
	rs := newServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListDays(t *testing.T) {
	rs := newServer(t, nil)
	code, resp := do(t, rs, http.MethodGet, "/api/days", "", nil)
	require.Equal(t, http.StatusOK, code)

	var list []DayInfo
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, days.Count)
	assert.Equal(t, DayInfo{Day: 1, Title: "Historian Hysteria"}, list[0])
}

func TestSolve(t *testing.T) {
	rs := newServer(t, nil)

	code, resp := do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, nil)
	require.Equal(t, http.StatusOK, code, resp.Message)

	var report runner.Report
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	require.Len(t, report.Parts, 2)
	assert.Equal(t, 11, report.Parts[0].Answer)
	assert.Equal(t, 31, report.Parts[1].Answer)

	// повторный запрос отдаёт ответы из кэша
	code, resp = do(t, rs, http.MethodPost, "/api/days/1/solve?part=2", day1Example, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	require.Len(t, report.Parts, 1)
	assert.True(t, report.Parts[0].Cached)
	assert.Equal(t, 31, report.Parts[0].Answer)
}

func TestSolveWithParams(t *testing.T) {
	rs := newServer(t, nil)

	code, resp := do(t, rs, http.MethodPost, "/api/days/14/solve?part=1&param[width]=11&param[height]=7", day14Example, nil)
	require.Equal(t, http.StatusOK, code, resp.Message)

	var report runner.Report
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	assert.Equal(t, 12, report.Parts[0].Answer)
}

func TestSolveErrors(t *testing.T) {
	rs := newServer(t, nil)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"нечисловой день", "/api/days/abc/solve", day1Example, http.StatusBadRequest},
		{"нулевой день", "/api/days/0/solve", day1Example, http.StatusBadRequest},
		{"неизвестный день", "/api/days/25/solve", day1Example, http.StatusNotFound},
		{"неверная часть", "/api/days/1/solve?part=3", day1Example, http.StatusBadRequest},
		{"нечисловая часть", "/api/days/1/solve?part=x", day1Example, http.StatusBadRequest},
		{"неверный параметр", "/api/days/14/solve?param[width]=wide", day14Example, http.StatusBadRequest},
		{"пустой вход", "/api/days/1/solve", "\n\n", http.StatusBadRequest},
		{"испорченный вход", "/api/days/1/solve", "3 4\nabc def\n", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := do(t, rs, http.MethodPost, tt.target, tt.body, nil)
			assert.Equal(t, tt.status, code)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSolveRequiresToken(t *testing.T) {
	secret, err := auth.GenerateSecureSecret()
	require.NoError(t, err)
	tokens, err := auth.NewTokenManager(secret, time.Hour)
	require.NoError(t, err)
	rs := newServer(t, tokens)

	code, _ := do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, map[string]string{"Authorization": "Bearer abc"})
	assert.Equal(t, http.StatusUnauthorized, code)

	readOnly, err := tokens.Generate("viewer", false)
	require.NoError(t, err)
	code, _ = do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, map[string]string{"Authorization": "Bearer " + readOnly})
	assert.Equal(t, http.StatusForbidden, code)

	solver, err := tokens.Generate("ci", true)
	require.NoError(t, err)
	code, resp := do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, map[string]string{"Authorization": "Bearer " + solver})
	assert.Equal(t, http.StatusOK, code, resp.Message)

	// список дней остаётся открытым
	code, _ = do(t, rs, http.MethodGet, "/api/days", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestStatsAndMetrics(t *testing.T) {
	rs := newServer(t, nil)

	code, _ := do(t, rs, http.MethodPost, "/api/days/1/solve", day1Example, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := do(t, rs, http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusOK, code)

	var stats struct {
		Days     int            `json:"days"`
		EventBus eventbus.Stats `json:"eventbus"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, days.Count, stats.Days)
	assert.Equal(t, uint64(2), stats.EventBus.Published)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rest_api_http_request_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	rs := newServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/days", nil)
	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStartShutdown(t *testing.T) {
	rs := NewRestServer(Config{Port: "127.0.0.1:0", Runner: runner.New(runner.Options{})})

	done := make(chan error, 1)
	go func() { done <- rs.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, rs.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("Start не завершился после Shutdown")
	}
}
