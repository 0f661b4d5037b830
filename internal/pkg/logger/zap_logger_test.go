package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewZapLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dispatch.log")
	zl, err := NewZapLogger(ZapConfig{Service: "dispatch", Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Named("scheduler").Warn("job failed", String("key", "ride:r1"), Err(errors.New("boom")))
	require.NoError(t, zl.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "job failed", entries[0]["message"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "dispatch", entries[0]["service"])
	assert.Equal(t, "scheduler", entries[0]["component"])
	assert.Equal(t, "ride:r1", entries[0]["key"])
	assert.Equal(t, "boom", entries[0]["error"])
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	zl, err := NewZapLogger(ZapConfig{Level: "chatty", FilePath: path}, nil)
	require.NoError(t, err)

	zl.Debug("hidden")
	zl.Info("shown")
	require.NoError(t, zl.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestZapEchoMiddleware_LogsStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "http.log")
	zl, err := NewZapLogger(ZapConfig{Service: "dispatch", Level: "info", FilePath: path}, nil)
	require.NoError(t, err)

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))
	require.NoError(t, zl.Close())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "Client error", entries[0]["message"])
	assert.Equal(t, float64(http.StatusNotFound), entries[0]["status"])
	assert.Equal(t, "/missing?x=1", entries[0]["path"])
}

func TestGlobalLogger_DefaultsToNop(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotPanics(t, func() { Info("nobody listens") })
}
