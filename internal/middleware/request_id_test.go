package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesTraceID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))

	traceID := GetTraceID(c)
	assert.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
}

func TestRequestIDPropagatesIncomingTraceID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "incoming-trace")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))

	assert.Equal(t, "incoming-trace", GetTraceID(c))
	assert.Equal(t, "incoming-trace", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceIDMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
