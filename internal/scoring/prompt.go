package scoring

import (
	"bytes"
	"text/template"
)

// Plan is a date plan as submitted by a user.
type Plan struct {
	Title       string
	Location    string
	Activity    string
	Budget      int64
	Duration    string
	Description string
}

var promptTmpl = template.Must(template.New("prompt").Parse(`
以下のデートプランを分析して、偏差値（50-100）とコメントを日本語で提供してください。

タイトル: {{.Title}}
場所: {{.Location}}
アクティビティ: {{.Activity}}
予算: {{.Budget}}円
時間: {{.Duration}}
詳細: {{.Description}}

以下の要素を考慮して偏差値を算出してください：
- 創造性・オリジナリティ
- 予算の適切性
- 場所の選択
- 時間配分
- 相手への配慮

回答は以下の形式でお願いします：
偏差値: [数値]
コメント: [100文字程度のアドバイス]
`))

// BuildPrompt renders the fixed scoring prompt. Plan fields are embedded verbatim.
func BuildPrompt(p Plan) string {
	var buf bytes.Buffer
	// Execute only fails on writer errors; bytes.Buffer has none.
	_ = promptTmpl.Execute(&buf, p)
	return buf.String()
}
