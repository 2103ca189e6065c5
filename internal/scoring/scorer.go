// Package scoring turns a date plan into a bounded score and a short comment
// by asking a generative model and reading its free-form answer.
package scoring

import (
	"context"
	"errors"
	"log"
	"time"
)

// Generator is the generative-model collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Outcome labels recorded for every Score call.
const (
	OutcomeParsed     = "parsed"
	OutcomeDefaulted  = "defaulted"
	OutcomeModelError = "model_error"
	OutcomeTimeout    = "timeout"
)

// Recorder receives one observation per Score call.
type Recorder interface {
	ObserveScoring(outcome string, modelLatency time.Duration)
}

// Result is what callers get back. Score is always within [MinScore, MaxScore]
// and Comment is never empty.
type Result struct {
	Score   int
	Comment string
}

type Scorer struct {
	gen      Generator
	timeout  time.Duration
	recorder Recorder
}

type Option func(*Scorer)

// WithTimeout bounds each model call. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Scorer) { s.timeout = d }
}

func WithRecorder(r Recorder) Option {
	return func(s *Scorer) { s.recorder = r }
}

func NewScorer(gen Generator, opts ...Option) *Scorer {
	s := &Scorer{gen: gen}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Score never fails: model errors, deadlines and unreadable answers all fall
// back to usable values.
func (s *Scorer) Score(ctx context.Context, p Plan) Result {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(callCtx, BuildPrompt(p))
	latency := time.Since(start)

	if err != nil {
		outcome := OutcomeModelError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = OutcomeTimeout
		}
		log.Printf("❌ AI分析エラー%s (%s): %v", requestTag(ctx), outcome, err)
		s.observe(outcome, latency)
		return Result{Score: DefaultScore, Comment: FallbackComment}
	}

	parsed := ParseResponse(text)
	if parsed.ScoreFound && parsed.CommentFound {
		s.observe(OutcomeParsed, latency)
	} else {
		s.observe(OutcomeDefaulted, latency)
	}
	return Result{Score: parsed.Score, Comment: parsed.Comment}
}

func (s *Scorer) observe(outcome string, d time.Duration) {
	if s.recorder != nil {
		s.recorder.ObserveScoring(outcome, d)
	}
}

type requestIDKey struct{}

// WithRequestID tags ctx so failure logs can be matched to a request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestTag(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return " [" + id + "]"
	}
	return ""
}
