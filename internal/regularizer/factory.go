package regularizer

import "github.com/decay-ml/decay/internal/tensor"

// DefaultRate is the coefficient used by the shorthand factories when a
// rate is resolved without an explicit value (e.g. the string "l2").
const DefaultRate = 0.01

// L1 creates a weight regularizer with only an L1 penalty.
func L1[B tensor.Backend](l float64) *Weight[B] {
	return NewWeight[B](l, 0)
}

// L2 creates a weight regularizer with only an L2 penalty.
func L2[B tensor.Backend](l float64) *Weight[B] {
	return NewWeight[B](0, l)
}

// L1L2 creates a weight regularizer with both penalties.
func L1L2[B tensor.Backend](l1, l2 float64) *Weight[B] {
	return NewWeight[B](l1, l2)
}

// ActivityL1 creates an activity regularizer with only an L1 penalty.
func ActivityL1[B tensor.Backend](l float64) *Activity[B] {
	return NewActivity[B](l, 0)
}

// ActivityL2 creates an activity regularizer with only an L2 penalty.
func ActivityL2[B tensor.Backend](l float64) *Activity[B] {
	return NewActivity[B](0, l)
}

// ActivityL1L2 creates an activity regularizer with both penalties.
func ActivityL1L2[B tensor.Backend](l1, l2 float64) *Activity[B] {
	return NewActivity[B](l1, l2)
}
