package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersonsilva/portfolio/internal/analytics"
	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, withStore bool) (*Server, *gin.Engine) {
	t.Helper()
	opts := serverOptions{
		Content:      content.Default(),
		Admin:        adminCredentials{Username: "admin", Password: "s3cret"},
		Retention:    30 * 24 * time.Hour,
		SyncTracking: true,
	}
	if withStore {
		store, err := analytics.Open(context.Background(), filepath.Join(t.TempDir(), "a.db"), analytics.WithSalt("t"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		opts.Store = store
	}
	s, err := newServer(opts)
	require.NoError(t, err)
	return s, s.Engine()
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func togglePost(cookie *http.Cookie, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestHomeDefaultsToDark(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="root" class="dark"`)
	assert.Contains(t, body, `data-icon="sun"`)
	assert.Contains(t, body, "Anderson Silva")
	assert.Nil(t, cookieNamed(w, themeCookie))
}

func TestHomeQueryOverrideDoesNotStore(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/?theme=light", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="root" class="light"`)
	assert.Contains(t, w.Body.String(), `data-icon="moon"`)
	assert.Nil(t, cookieNamed(w, themeCookie))

	// Garbage falls back to the session.
	req := httptest.NewRequest(http.MethodGet, "/?theme=neon", nil)
	req.AddCookie(&http.Cookie{Name: themeCookie, Value: "light"})
	w = do(r, req)
	assert.Contains(t, w.Body.String(), `id="root" class="light"`)
}

func TestHomeInvalidCookieIsDark(t *testing.T) {
	_, r := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: themeCookie, Value: "sepia"})
	w := do(r, req)
	assert.Contains(t, w.Body.String(), `id="root" class="dark"`)
}

func TestToggleFormPostRedirects(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, togglePost(nil, false))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	c := cookieNamed(w, themeCookie)
	require.NotNil(t, c)
	assert.Equal(t, "light", c.Value)
	assert.Zero(t, c.MaxAge, "theme cookie must be a session cookie")
	assert.True(t, c.Expires.IsZero(), "theme cookie must be a session cookie")
	assert.True(t, c.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	w = do(r, req)
	assert.Contains(t, w.Body.String(), `id="root" class="light"`)
}

func TestToggleHTMXReturnsRootFragment(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, togglePost(nil, true))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<div id="root" class="light"`))
	assert.Contains(t, body, `data-icon="moon"`)
	assert.NotContains(t, body, `data-icon="sun"`)
	assert.Contains(t, body, `id="educacao"`)
}

func TestToggleTwiceReturnsToInitial(t *testing.T) {
	_, r := newTestServer(t, false)

	var cookie *http.Cookie
	seen := []string{}
	for i := 0; i < 4; i++ {
		w := do(r, togglePost(cookie, false))
		cookie = cookieNamed(w, themeCookie)
		require.NotNil(t, cookie)
		seen = append(seen, cookie.Value)
	}
	assert.Equal(t, []string{"light", "dark", "light", "dark"}, seen)
}

func TestSectionFragments(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/sections/experiencia", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="experiencia"`)
	assert.Equal(t, 3, strings.Count(body, `data-card="experience"`))
	assert.NotContains(t, body, "<!DOCTYPE html>")

	w = do(r, httptest.NewRequest(http.MethodGet, "/sections/contato", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Seção não encontrada.")
}

func TestHealthz(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestVisitTracking(t *testing.T) {
	s, r := newTestServer(t, true)

	do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/sections/projetos", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/privacy", nil))

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	do(r, dnt)

	do(r, togglePost(nil, false))

	stats, err := s.opts.Store.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalVisits)
	assert.EqualValues(t, 1, stats.Toggles["light"])
	for _, v := range stats.RecentVisits {
		assert.NotContains(t, v.HashedIP, "192.0.2.1")
	}
}

func TestPrivacyPage(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/privacy", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "30 dias")
}

func TestAdminRoutesAbsentWithoutStore(t *testing.T) {
	_, r := newTestServer(t, false)

	w := do(r, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestLoggerWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	s, err := newServer(serverOptions{Content: content.Default(), Logger: log})
	require.NoError(t, err)
	r := s.Engine()

	do(r, httptest.NewRequest(http.MethodGet, "/sections/contato", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "/sections/contato", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.Equal(t, "warn", entry["level"])
}
