package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	//リクエスト全体のタイムアウト。超えたら進行中のDB処理はロールバック。
	RequestTimeout time.Duration

	//監査ログ（追記専用テキスト）。空なら無効。
	AuditLogPath string
}

// Loadは環境変数から読む。DB接続はinfra/dbが直接envを見る。
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		RequestTimeout: durenvs("REQUEST_TIMEOUT_SECONDS", 10),
		AuditLogPath:   getenv("AUDIT_LOG_PATH", "transactions.log"),
	}

	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be > 0")
	}

	return cfg, nil
}

// Addrは":8080"形式で返す。
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func durenvs(key string, defSec int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	sec, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(sec) * time.Second
}
