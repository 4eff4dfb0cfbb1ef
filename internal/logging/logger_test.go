package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := consoleOutput
	consoleOutput = buf
	t.Cleanup(func() { consoleOutput = prev })
	return buf
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace": TRACE, "DEBUG": DEBUG, "": INFO, "info": INFO, "warning": WARN, "Error": ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestConsoleLevelFilter(t *testing.T) {
	buf := captureConsole(t)
	SetLogDir("")

	l, err := NewLogger("test")
	require.NoError(t, err)

	l.Debug("скрыто")
	l.Info("видно %d", 1)
	assert.NotContains(t, buf.String(), "скрыто")
	assert.Contains(t, buf.String(), "[INFO] [test] видно 1")

	l.SetLevel(TRACE)
	l.Trace("трасса")
	assert.Contains(t, buf.String(), "[TRACE] [test] трасса")
	assert.NoError(t, l.Close())
}

func TestFileLogger(t *testing.T) {
	captureConsole(t)
	dir := t.TempDir()
	SetLogDir(dir)
	t.Cleanup(func() { SetLogDir("") })

	l, err := NewLogger("file")
	require.NoError(t, err)
	l.Debug("в файл")
	require.NoError(t, l.Close())
	// повторное закрытие безопасно
	require.NoError(t, l.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "file_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [file] в файл")
}

func TestManager(t *testing.T) {
	captureConsole(t)
	SetLogDir("")

	lm := &LoggerManager{loggers: make(map[string]*Logger), level: INFO}
	a := lm.MustGetLogger("b-comp")
	b := lm.MustGetLogger("b-comp")
	assert.Same(t, a, b)

	lm.MustGetLogger("a-comp")
	assert.Equal(t, []string{"a-comp", "b-comp"}, lm.ListComponents())

	lm.SetLevel(ERROR)
	assert.Equal(t, ERROR, a.minConsoleLevel)

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}
