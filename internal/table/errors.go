package table

import "github.com/cockroachdb/errors"

// Domain errors for table construction.
var (
	// ErrInvalidResolution indicates a non-positive sample count.
	ErrInvalidResolution = errors.New("table: invalid resolution")

	// ErrInvalidBits indicates a fixed-point scale that cannot hold ±1.0 in int16.
	ErrInvalidBits = errors.New("table: fixed-point bits out of range")
)

// CheckResolution returns nil when n can size a table.
func CheckResolution(n int) error {
	if n > 0 {
		return nil
	}
	return errors.WithHint(
		errors.Wrapf(ErrInvalidResolution, "resolution %d", n),
		"resolution must be a positive number of samples over [0, π)",
	)
}
