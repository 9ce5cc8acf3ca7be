package vecexpr

import "github.com/pkg/errors"

// Errors which depend on the values in an expression rather than its types.
var (
	ErrZeroMagnitude      = errors.New("vector has zero magnitude")
	ErrZeroQuaternion     = errors.New("quaternion has zero magnitude")
	ErrOppositeDirections = errors.New("interpolation between opposite directions is undefined")
)

// ErrNoConversion is returned when converting between axes which have no
// registered conversion.
var ErrNoConversion = errors.New("conversion between axes is not defined")

// IsDomainError checks if err was caused by a value outside of the domain
// of an operation, such as normalizing a zero vector.
//
// Callers may recover from these errors, for example by skipping the
// operation or substituting an identity value.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrZeroMagnitude) ||
		errors.Is(err, ErrZeroQuaternion) ||
		errors.Is(err, ErrOppositeDirections)
}
