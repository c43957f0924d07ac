package pathindex

import (
	"errors"
	"fmt"
)

// ErrUnreachable indicates that, at initial load, some ordinary vertex has
// no path to any quarry.
var ErrUnreachable = errors.New("pathindex: vertex has no path to any quarry")

// ErrUnknownVertex indicates a query referenced a vertex absent from the
// index.
var ErrUnknownVertex = errors.New("pathindex: unknown vertex")

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
