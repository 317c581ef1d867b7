package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"spendtrack/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.AIConfig{
		APIKey:   "test-key",
		Model:    "gemini-2.5-flash",
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		Attempts: 2,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return client, server
}

func candidateJSON(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": text},
					},
				},
			},
		},
	})
	return string(body)
}

func TestSuggestCategoryParsesJSONReply(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateJSON(`{"category": "Groceries"}`)))
	})

	category, err := client.SuggestCategory(context.Background(), "weekly shop at aldi", []string{"Rent", "Transport"})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category)
}

func TestSuggestCategoryHandlesFencedReply(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateJSON("```json\n{\"category\": \"Transport\"}\n```")))
	})

	category, err := client.SuggestCategory(context.Background(), "uber to airport", nil)
	require.NoError(t, err)
	assert.Equal(t, "Transport", category)
}

func TestSuggestCategoryAcceptsBareName(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateJSON("Dining Out")))
	})

	category, err := client.SuggestCategory(context.Background(), "dinner with friends", nil)
	require.NoError(t, err)
	assert.Equal(t, "Dining Out", category)
}

func TestGenerateInsight(t *testing.T) {
	var requestBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(candidateJSON("  You spent most on Rent this month. ")))
	})

	previous := "950.00"
	insight, err := client.GenerateInsight(context.Background(), InsightSummary{
		PeriodLabel:   "2024-06-01 to 2024-06-30",
		Total:         "1200.00",
		PreviousTotal: &previous,
		Count:         14,
		ByCategory:    []CategoryLine{{Name: "Rent", Total: "900.00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "You spent most on Rent this month.", insight)
	assert.Contains(t, string(requestBody), "Previous period total: 950.00")
}

func TestGenerateRetriesOnServerError(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(candidateJSON(`{"category": "Utilities"}`)))
	})

	category, err := client.SuggestCategory(context.Background(), "electricity bill", nil)
	require.NoError(t, err)
	assert.Equal(t, "Utilities", category)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestGenerateFailsAfterRetriesExhausted(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.SuggestCategory(context.Background(), "anything", nil)
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	client := NewClient(config.AIConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, client.Enabled())

	_, err := client.SuggestCategory(context.Background(), "anything", nil)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures; i++ {
		_, err := client.GenerateInsight(context.Background(), InsightSummary{})
		assert.Error(t, err)
	}

	before := atomic.LoadInt32(&calls)
	_, err := client.GenerateInsight(context.Background(), InsightSummary{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, atomic.LoadInt32(&calls), "open breaker must short-circuit before the HTTP call")
}
