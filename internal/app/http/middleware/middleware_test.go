package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoBody(c *gin.Context) {
	b, _ := io.ReadAll(c.Request.Body)
	c.Data(http.StatusOK, "application/json", b)
}

func TestSanitizeStripsMarkup(t *testing.T) {
	r := gin.New()
	r.POST("/", SanitizeAndCleanInputMiddleware(), echoBody)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"title":"<script>alert(1)</script>夜景","budget":12345678901,"duration":"<b>4時間</b>"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"夜景","budget":12345678901,"duration":"4時間"}`, w.Body.String())
}

func TestSanitizeKeepsPlainTextPunctuation(t *testing.T) {
	r := gin.New()
	r.POST("/", SanitizeAndCleanInputMiddleware(), echoBody)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"title":"映画 & ディナー","description":"Tom's \"best\" plan"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"映画 & ディナー","description":"Tom's \"best\" plan"}`, w.Body.String())
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	r := gin.New()
	r.POST("/", SanitizeAndCleanInputMiddleware(), echoBody)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Malformed JSON"}`, w.Body.String())
}

func TestSanitizeSkipsGET(t *testing.T) {
	r := gin.New()
	r.GET("/", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))
}

type observed struct {
	route, method string
	status        int
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observed
}

func (f *fakeObserver) ObserveRequest(route, method string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observed{route, method, status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/api/posts/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/42", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observed{"/api/posts/:id", http.MethodGet, http.StatusTeapot}, obs.seen[0])
}
