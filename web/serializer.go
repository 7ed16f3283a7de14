package web

import (
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"net/http"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSerializer is an echo.JSONSerializer backed by json-iterator.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

func (JSONSerializer) Deserialize(c echo.Context, i any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return NewHTTPError(http.StatusBadRequest, WithMessage(fmt.Sprintf("invalid json body: %v", err)), WithCause(err))
	}

	return nil
}

var _ echo.JSONSerializer = JSONSerializer{}
