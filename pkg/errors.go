package pkg

import (
	"github.com/coinsurf-com/invite/pkg/safemath"
	"github.com/pkg/errors"
)

var (
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrSelfReference   = errors.New("caller cannot reference itself")
	ErrAlreadyBound    = errors.New("caller already has a parent")
	ErrCycleDetected   = errors.New("binding would create a cycle")
	ErrInvalidPage     = errors.New("page number must be at least 1")
	ErrUnauthorized    = errors.New("caller is not authorized")
	// ErrOverflow means counter or pagination arithmetic would wrap. It is a bug, not user error.
	ErrOverflow = safemath.ErrOverflow
)

// IsRejection reports whether err is a refused request rather than a failure of the service.
func IsRejection(err error) bool {
	for _, target := range []error{ErrInvalidIdentity, ErrSelfReference, ErrAlreadyBound, ErrCycleDetected, ErrInvalidPage, ErrUnauthorized} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
