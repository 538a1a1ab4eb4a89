package audit

import (
	"fmt"
	"os"
	"time"
)

// Trail は人間が読む用の追記専用ログ。
// ベストエフォートであり、書き込み失敗は呼び出し元の結果に影響させない。
type Trail struct {
	path string
}

// DI。pathが空ならAppendは何もしない。
func NewTrail(path string) *Trail {
	return &Trail{path: path}
}

// Appendは1行追記する。ISO-8601のタイムスタンプ付き。
// エラーは全て握りつぶす（監査ログの失敗で業務処理を失敗させない）。
func (t *Trail) Append(text string) {
	if t == nil || t.path == "" {
		return
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", time.Now().UTC().Format(time.RFC3339), text)
	_, _ = f.WriteString(line)
}
