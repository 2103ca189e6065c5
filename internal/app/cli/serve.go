package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dateplan-app/config"
	"dateplan-app/database"
	postsapi "dateplan-app/internal/api/posts"
	routes "dateplan-app/internal/app/http"
	"dateplan-app/internal/domain/posts"
	"dateplan-app/internal/infra/gemini"
	"dateplan-app/internal/infra/metrics"
	"dateplan-app/internal/scoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	config.RequireGemini()
	if config.GIN_MODE != "" {
		gin.SetMode(config.GIN_MODE)
	}

	database.InitDB()

	recorder := metrics.NewPrometheusRecorder(prometheus.DefaultRegisterer)
	model := gemini.NewClient(config.GEMINI_API_KEY, config.GEMINI_MODEL)
	scorer := scoring.NewScorer(model,
		scoring.WithTimeout(config.SCORING_TIMEOUT),
		scoring.WithRecorder(recorder),
	)

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(corsConfig(config.CORS_ORIGIN)))

	routes.RegisterRoutes(r, routes.Deps{
		Posts:    postsapi.NewHandler(posts.NewGormStore(database.DB), scorer),
		Observer: recorder,
		Gatherer: prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server listening on http://localhost:%s (model %s)", config.PORT, model.ModelName())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.SCORING_TIMEOUT+5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	return cfg
}
