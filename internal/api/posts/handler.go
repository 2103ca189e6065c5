package posts

import (
	"context"
	"log"
	"net/http"

	"dateplan-app/internal/domain/posts"
	"dateplan-app/internal/scoring"

	"github.com/gin-gonic/gin"
)

// Scorer is satisfied by *scoring.Scorer.
type Scorer interface {
	Score(ctx context.Context, p scoring.Plan) scoring.Result
}

type Handler struct {
	store  posts.Store
	scorer Scorer
}

func NewHandler(store posts.Store, scorer Scorer) *Handler {
	return &Handler{store: store, scorer: scorer}
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

// ------------------------------
// POST /api/posts
// ------------------------------
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := req.toPlan()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := scoring.WithRequestID(c.Request.Context(), c.GetString("request_id"))
	result := h.scorer.Score(ctx, plan)

	post := posts.DatePost{
		Title:       plan.Title,
		Location:    plan.Location,
		Activity:    plan.Activity,
		Budget:      plan.Budget,
		Duration:    plan.Duration,
		Description: plan.Description,
		Score:       result.Score,
		AIComment:   result.Comment,
	}

	if err := h.store.Create(c.Request.Context(), &post); err != nil {
		log.Printf("❌ 投稿作成エラー: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to save post")
		return
	}

	c.JSON(http.StatusOK, CreatePostResponse{
		Success: true,
		Score:   result.Score,
		Comment: result.Comment,
		Post:    post.ToView(),
	})
}

// ------------------------------
// GET /api/posts  (best score first)
// ------------------------------
func (h *Handler) ListPosts(c *gin.Context) {
	list, err := h.store.ListByScore(c.Request.Context())
	if err != nil {
		log.Printf("❌ 投稿取得エラー: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	out := ListPostsResponse{Success: true, Posts: make([]posts.View, 0, len(list))}
	for _, p := range list {
		out.Posts = append(out.Posts, p.ToView())
	}
	c.JSON(http.StatusOK, out)
}
