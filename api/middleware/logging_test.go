package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockLogger implements the Logger interface for testing
type mockLogger struct {
	logs []logEntry
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, logEntry{level: "DEBUG", message: msg, fields: fields})
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, logEntry{level: "INFO", message: msg, fields: fields})
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, logEntry{level: "WARN", message: msg, fields: fields})
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, logEntry{level: "ERROR", message: msg, fields: fields})
}

func TestRequestLoggingMiddleware_LogsMethodAndPath(t *testing.T) {
	logger := &mockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/items?merge=true", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Len(t, logger.logs, 1)
	entry := logger.logs[0]
	assert.Equal(t, "INFO", entry.level)
	assert.Equal(t, "request completed", entry.message)
	assert.Equal(t, "POST", entry.fields["method"])
	assert.Equal(t, "/items", entry.fields["path"])
	assert.NotEmpty(t, entry.fields["request_id"])
	assert.Equal(t, 200, entry.fields["status"])
}

func TestRequestLoggingMiddleware_ServerErrorsLogAsError(t *testing.T) {
	logger := &mockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest("GET", "/ledger", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Len(t, logger.logs, 1)
	assert.Equal(t, "ERROR", logger.logs[0].level)
	assert.Equal(t, 500, logger.logs[0].fields["status"])
}

func TestRequestLoggingMiddleware_SetsRequestIDHeader(t *testing.T) {
	logger := &mockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/badge", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestLoggingMiddleware_RecordsDuration(t *testing.T) {
	logger := &mockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
	}))

	req := httptest.NewRequest("GET", "/settings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Len(t, logger.logs, 1)
	duration, ok := logger.logs[0].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}
