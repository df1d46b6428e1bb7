package clusterkit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMethod is returned for an unknown training method.
	ErrUnsupportedMethod = errors.New("unsupported training method")

	// ErrInvalidK is returned when the cluster count is not positive.
	ErrInvalidK = errors.New("cluster count must be positive")

	// ErrInvalidEpochs is returned when the epoch count is not positive.
	ErrInvalidEpochs = errors.New("epoch count must be positive")

	// ErrInvalidLearningRate is returned when the initial learning rate is
	// outside (0, 1].
	ErrInvalidLearningRate = errors.New("learning rate must be in (0, 1]")

	// ErrTooFewSamples is returned when the data set has fewer samples than
	// the requested cluster count.
	ErrTooFewSamples = errors.New("not enough samples for requested cluster count")
)

// ErrShapeMismatch indicates that supplied initial centroids do not match the
// data dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: expected dimension %d, got %d", e.Expected, e.Actual)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }
