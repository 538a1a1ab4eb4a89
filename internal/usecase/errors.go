package usecase

import (
	"errors"
	"fmt"
)

// HTTPErrorはusecaseの失敗をHTTPステータス付きで運ぶ。
// 422: 入力不正・業務ルール違反 / 404: 対象なし / 500: ストア障害
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
