package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrail_AppendWritesTimestampedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.log")
	trail := NewTrail(path)

	trail.Append("TX t-1 sale p-1 2 total:20")
	trail.Append("ADD PRODUCT p-2")

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.Contains(t, lines[0], "] TX t-1 sale p-1 2 total:20")
	assert.Contains(t, lines[1], "ADD PRODUCT p-2")
}

// 書き込み失敗は握りつぶす（呼び出し元を失敗させない）
func TestTrail_AppendSwallowsWriteFailure(t *testing.T) {
	trail := NewTrail(filepath.Join(t.TempDir(), "no-such-dir", "x", "transactions.log"))

	assert.NotPanics(t, func() {
		trail.Append("TX t-1")
	})
}

func TestTrail_EmptyPathIsDisabled(t *testing.T) {
	trail := NewTrail("")

	assert.NotPanics(t, func() {
		trail.Append("TX t-1")
	})
}
