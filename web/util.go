package web

import (
	"cmp"
	"fmt"
	"github.com/labstack/echo/v4"
	"net/http"
)

func noCache(c echo.Context) {
	res := c.Response()
	res.Header().Del("Expires")
	res.Header().Set(echo.HeaderCacheControl, "private, no-cache, no-store, max-age=0, must-revalidate")
}

type HTTPErrorOption func(e *HTTPError)

type HTTPError struct {
	code        int
	message     string
	cause       error
	unmaskCause bool
}

func (e *HTTPError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%d %s: %s", e.code, e.publicMessage(), e.cause)
	}

	return fmt.Sprintf("%d %s", e.code, e.publicMessage())
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

func (e *HTTPError) Code() int {
	return e.code
}

func (e *HTTPError) publicMessage() string {
	if e.unmaskCause && e.cause != nil {
		return e.cause.Error()
	}

	return cmp.Or(e.message, http.StatusText(e.code))
}

func (e *HTTPError) echo() *echo.HTTPError {
	return echo.NewHTTPError(e.code, errorBody(e.publicMessage()))
}

func WithMessage(message string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.message = message
	}
}

func WithCause(cause error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.cause = cause
	}
}

func WithUnmaskedCause() HTTPErrorOption {
	return func(e *HTTPError) {
		e.unmaskCause = true
	}
}

func NewHTTPError(code int, opts ...HTTPErrorOption) *HTTPError {
	err := new(HTTPError)
	err.code = code

	for _, opt := range opts {
		opt(err)
	}

	return err
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
