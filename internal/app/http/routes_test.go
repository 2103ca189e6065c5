package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postsapi "dateplan-app/internal/api/posts"
	"dateplan-app/internal/domain/posts"
	"dateplan-app/internal/infra/metrics"
	"dateplan-app/internal/scoring"
)

type memoryStore struct {
	saved []posts.DatePost
}

func (m *memoryStore) Create(_ context.Context, p *posts.DatePost) error {
	p.ID = uint(len(m.saved) + 1)
	p.CreatedAt = time.Now()
	m.saved = append(m.saved, *p)
	return nil
}

func (m *memoryStore) ListByScore(context.Context) ([]posts.DatePost, error) {
	return m.saved, nil
}

type cannedModel struct {
	reply   string
	prompts []string
}

func (m *cannedModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, nil
}

func newTestEngine(t *testing.T, reply string) (*gin.Engine, *memoryStore) {
	r, store, _ := newTestEngineWithModel(t, reply)
	return r, store
}

func newTestEngineWithModel(t *testing.T, reply string) (*gin.Engine, *memoryStore, *cannedModel) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	store := &memoryStore{}
	model := &cannedModel{reply: reply}
	scorer := scoring.NewScorer(model, scoring.WithRecorder(rec))

	r := gin.New()
	RegisterRoutes(r, Deps{
		Posts:    postsapi.NewHandler(store, scorer),
		Observer: rec,
		Gatherer: reg,
	})
	return r, store, model
}

func TestHealth(t *testing.T) {
	r, _ := newTestEngine(t, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","message":"Backend is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSubmitThenRank(t *testing.T) {
	r, store := newTestEngine(t, "偏差値：83\nコメント：<i>雨の日の代案</i>があると完璧です")

	body := `{"title":"<b>夜景</b>","location":"横浜","activity":"ディナー","budget":"12000","duration":"3時間","description":"観覧車"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, store.saved, 1)
	assert.Equal(t, "夜景", store.saved[0].Title, "markup is stripped before scoring and storage")
	assert.Equal(t, 83, store.saved[0].Score)
	assert.Equal(t, int64(12000), store.saved[0].Budget)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score":83`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dateplan_scoring_total{outcome="parsed"} 1`)
	assert.Contains(t, w.Body.String(), `dateplan_http_requests_total{method="POST",route="/api/posts",status="200"} 1`)
}

func TestSubmitKeepsPlainTextPunctuation(t *testing.T) {
	r, store, model := newTestEngineWithModel(t, "偏差値: 77\nコメント: good")

	body := `{"title":"映画 & ディナー","location":"渋谷","activity":"映画","budget":6000,"duration":"3時間","description":"Tom's \"best\" plan"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "タイトル: 映画 & ディナー")
	assert.Contains(t, model.prompts[0], `詳細: Tom's "best" plan`)
	assert.NotContains(t, model.prompts[0], "&amp;")
	assert.NotContains(t, model.prompts[0], "&#39;")

	require.Len(t, store.saved, 1)
	assert.Equal(t, "映画 & ディナー", store.saved[0].Title)
	assert.Equal(t, `Tom's "best" plan`, store.saved[0].Description)
}
