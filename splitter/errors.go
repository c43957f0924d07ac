// File: errors.go
// Role: sentinel errors for the splitter driver.
package splitter

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExhausted indicates a fresh edge touches a vertex for which
	// every quarry with remaining capacity is unreachable: total quarry
	// capacity is insufficient for the network.
	ErrCapacityExhausted = errors.New("splitter: quarry capacity exhausted")

	// ErrRunawaySplitting indicates construct_edge recursion exceeded the
	// configured depth limit, which signals numerical degeneracy rather than
	// a legitimate split cascade.
	ErrRunawaySplitting = errors.New("splitter: runaway splitting, recursion depth limit exceeded")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
