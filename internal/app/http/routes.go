package routes

import (
	"net/http"

	postsapi "dateplan-app/internal/api/posts"
	"dateplan-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Posts    *postsapi.Handler
	Observer middleware.RequestObserver
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestID())
	if d.Observer != nil {
		r.Use(middleware.Metrics(d.Observer))
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Backend is running"})
	})

	// ✅ Sanitize user-submitted plans before they reach the model or the DB
	public := api.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/posts", d.Posts.CreatePost)
	public.GET("/posts", d.Posts.ListPosts)
}
