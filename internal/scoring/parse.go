package scoring

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

const (
	MinScore     = 50
	MaxScore     = 100
	DefaultScore = 75

	DefaultComment  = "素晴らしいデートプランです！"
	FallbackComment = "分析中にエラーが発生しましたが、良いデートプランだと思います！"
)

// Label markers accepted in model output. Models drift between ASCII and
// full-width colons, so both variants are recognised.
var (
	scoreMarkers   = []string{"偏差値:", "偏差値："}
	commentMarkers = []string{"コメント:", "コメント："}
	separators     = []string{":", "："}
)

// Parsed is the outcome of reading a model response.
// ScoreFound and CommentFound report whether the value came from the
// response or from the defaults.
type Parsed struct {
	Score        int
	Comment      string
	ScoreFound   bool
	CommentFound bool
}

// ParseResponse extracts the score and comment from free-form model text.
// Each field degrades to its default on its own.
func ParseResponse(text string) Parsed {
	out := Parsed{Score: DefaultScore, Comment: DefaultComment}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		switch {
		case hasMarker(line, scoreMarkers):
			if n, ok := extractScore(line); ok {
				out.Score = clamp(n)
				out.ScoreFound = true
			}
		case hasMarker(line, commentMarkers):
			if c, ok := extractComment(line); ok {
				out.Comment = c
				out.CommentFound = true
			}
		}
	}
	return out
}

func hasMarker(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// extractScore keeps only the decimal digits of line and parses them.
// Full-width digits are folded to ASCII first. A digit run too long for int
// is above any bound and reads as MaxScore.
func extractScore(line string) (int, bool) {
	var digits strings.Builder
	for _, r := range width.Narrow.String(line) {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if errors.Is(err, strconv.ErrRange) {
		return MaxScore, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractComment returns the trimmed text after the first separator present,
// trying the ASCII colon before the full-width one. Only one cut is made, so
// "コメント: 良い：でも" keeps "良い：でも".
func extractComment(line string) (string, bool) {
	for _, sep := range separators {
		if _, after, found := strings.Cut(line, sep); found {
			c := strings.TrimSpace(after)
			return c, c != ""
		}
	}
	return "", false
}

func clamp(n int) int {
	if n < MinScore {
		return MinScore
	}
	if n > MaxScore {
		return MaxScore
	}
	return n
}
