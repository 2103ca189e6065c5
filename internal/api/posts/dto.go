package posts

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"dateplan-app/internal/domain/posts"
	"dateplan-app/internal/scoring"
)

// ---------- requests

type CreatePostRequest struct {
	Title       string      `json:"title" binding:"required"`
	Location    string      `json:"location" binding:"required"`
	Activity    string      `json:"activity" binding:"required"`
	Budget      json.Number `json:"budget" binding:"required"` // number or numeric string, yen
	Duration    string      `json:"duration" binding:"required"`
	Description string      `json:"description" binding:"required"`
}

// budgetYen accepts integral values only ("15000", 15000, 15000.0) that fit
// the integer column.
func (r CreatePostRequest) budgetYen() (int64, error) {
	raw := json.Number(strings.TrimSpace(r.Budget.String()))
	n, err := raw.Int64()
	if err != nil {
		f, ferr := raw.Float64()
		if ferr != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
			return 0, fmt.Errorf("budget must be an integer, got %q", raw)
		}
		n = int64(f)
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("budget out of range: %s", raw)
	}
	return n, nil
}

func (r CreatePostRequest) toPlan() (scoring.Plan, error) {
	budget, err := r.budgetYen()
	if err != nil {
		return scoring.Plan{}, err
	}
	return scoring.Plan{
		Title:       r.Title,
		Location:    r.Location,
		Activity:    r.Activity,
		Budget:      budget,
		Duration:    r.Duration,
		Description: r.Description,
	}, nil
}

// ---------- responses

type CreatePostResponse struct {
	Success bool       `json:"success"`
	Score   int        `json:"score"`
	Comment string     `json:"comment"`
	Post    posts.View `json:"post"`
}

type ListPostsResponse struct {
	Success bool         `json:"success"`
	Posts   []posts.View `json:"posts"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
