package web

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"log"
	"net/http"
)

func NoCacheOnErrorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				noCache(c)
			}

			return err
		}
	}
}

// ErrorLogAndMaskMiddleware turns every error into an echo.HTTPError with an
// {"error": "..."} body. Server side errors are logged with their cause and
// masked towards the client unless explicitly unmasked.
func ErrorLogAndMaskMiddleware(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			req := c.Request()

			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				if httpErr.code >= http.StatusInternalServerError {
					logger.Printf("%s %s: %v", req.Method, req.URL.Path, httpErr)
				}

				return httpErr.echo()
			}

			var echoErr *echo.HTTPError
			if errors.As(err, &echoErr) {
				if echoErr.Code >= http.StatusInternalServerError {
					logger.Printf("%s %s: %v", req.Method, req.URL.Path, echoErr)
					return echo.NewHTTPError(echoErr.Code, errorBody(http.StatusText(echoErr.Code)))
				}

				if _, ok := echoErr.Message.(map[string]string); ok {
					return echoErr
				}

				return echo.NewHTTPError(echoErr.Code, errorBody(fmt.Sprint(echoErr.Message)))
			}

			logger.Printf("%s %s: %v", req.Method, req.URL.Path, err)
			return echo.NewHTTPError(http.StatusInternalServerError, errorBody(http.StatusText(http.StatusInternalServerError)))
		}
	}
}
