// Package logger は log/slog のJSONロガーを共通設定で組み立てる。
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New は環境名に応じたslogロガーを返す。
// devはtextで読みやすく、それ以外はJSONで集約しやすく。
func New(env string) *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(env, "dev") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(env, "dev") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("service", "drumroast", "environment", env)
}
