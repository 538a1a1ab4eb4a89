package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestTimeoutはリクエストのcontextに期限を付ける。
// 期限切れになるとctxがキャンセルされ、進行中のDBトランザクションは
// ロールバックされて呼び出し元にはエラーが返る（開いたまま残さない）。
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
