package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds matches any OutOfBoundsError through errors.Is
var ErrOutOfBounds = errors.New("position out of bounds")

// OutOfBoundsError is returned when a mutation targets a position outside the grid
type OutOfBoundsError struct {
	Position   Position
	Dimensions Dimensions
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %s out of bounds for grid %s", e.Position, e.Dimensions)
}

// Is lets errors.Is(err, ErrOutOfBounds) match wrapped bounds failures
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

func outOfBounds(pos Position, dims Dimensions) error {
	return errors.WithStack(&OutOfBoundsError{Position: pos, Dimensions: dims})
}
