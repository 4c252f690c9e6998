package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingTransportRedactsAndRestoresBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"prompt":"hi"}`, string(body))
		assert.Equal(t, "Bearer sk-secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := NewHTTPClient(5*time.Second, zap.New(core))

	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(`{"prompt":"hi"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer sk-secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"ok":true}`, string(body))

	entries := logs.FilterMessage("upstream request").All()
	require.Len(t, entries, 1)
	headers := entries[0].ContextMap()["headers"].(http.Header)
	assert.Equal(t, "[REDACTED]", headers.Get("Authorization"))
	assert.Equal(t, 1, logs.FilterMessage("upstream response").Len())
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+10)
	assert.True(t, strings.HasSuffix(truncate([]byte(long)), "...(truncated)"))
	assert.Equal(t, "short", truncate([]byte("short")))
}
