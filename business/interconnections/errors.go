package interconnections

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExternalService = errors.New("external service error")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func externalService(err error) error {
	return fmt.Errorf("%w: %w", ErrExternalService, err)
}
