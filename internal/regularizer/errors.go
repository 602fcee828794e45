package regularizer

import "errors"

// Common errors. All of them signal model-construction or config bugs:
// they are surfaced synchronously and are not recoverable.
var (
	// ErrAlreadyBound is returned when a regularizer is bound a second
	// time. Regularizers cannot be reused; instantiate one per layer.
	ErrAlreadyBound = errors.New("regularizer already bound: instantiate one regularizer per layer")

	// ErrUnbound is returned when Apply is called before any bind.
	ErrUnbound = errors.New("regularizer not bound to a target")

	// ErrUnsupportedRank is returned when eigenvalue decay is given a
	// tensor with more than 2 dimensions.
	ErrUnsupportedRank = errors.New("eigenvalue decay is only available for dense and embedding weights (rank <= 2)")

	// ErrUnknownRegularizer is returned when the registry is given an
	// unrecognized identifier.
	ErrUnknownRegularizer = errors.New("unknown regularizer")
)
