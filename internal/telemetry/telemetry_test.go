package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type recordingExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
}

func (e *recordingExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, spans...)
	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error { return nil }

func (e *recordingExporter) Spans() []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sdktrace.ReadOnlySpan(nil), e.spans...)
}

func attr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "", "portfolio")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMiddlewareRecordsSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := &recordingExporter{}
	p := NewWithExporter(exp, "portfolio-test")
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	r := gin.New()
	r.Use(p.Middleware())
	r.GET("/sections/:name", func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sections/unknown", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, p.ForceFlush(context.Background()))
	spans := exp.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /sections/:name", spans[0].Name())

	status, ok := attr(spans[0], "http.status_code")
	require.True(t, ok)
	assert.EqualValues(t, 404, status.AsInt64())

	target, ok := attr(spans[0], "http.target")
	require.True(t, ok)
	assert.Equal(t, "/sections/unknown", target.AsString())
}

func TestNilMiddlewarePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var p *Provider

	r := gin.New()
	r.Use(p.Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
