package regularizer

import (
	"fmt"

	"github.com/decay-ml/decay/internal/tensor"
)

// Builder constructs a regularizer from keyword arguments. Missing
// keys fall back to the builder's defaults.
type Builder[B tensor.Backend] func(kwargs map[string]float64) (Regularizer[B], error)

// Registry resolves string identifiers to regularizer instances.
//
// The mapping is an explicit name → constructor table populated at
// construction; lookups are case-sensitive. Both the shorthand factory
// names ("l1", "l2", "l1l2", "activity_l1", ...) and the class names
// ("WeightRegularizer", "ActivityRegularizer", "EigenvalueRegularizer",
// "None") are registered, so Describe output resolves back through the
// same table.
type Registry[B tensor.Backend] struct {
	builders map[string]Builder[B]
}

// NewRegistry creates a registry with all built-in regularizers
// registered.
func NewRegistry[B tensor.Backend]() *Registry[B] {
	r := &Registry[B]{builders: make(map[string]Builder[B])}

	r.Register("l1", func(kw map[string]float64) (Regularizer[B], error) {
		return L1[B](kwarg(kw, "l", DefaultRate)), nil
	})
	r.Register("l2", func(kw map[string]float64) (Regularizer[B], error) {
		return L2[B](kwarg(kw, "l", DefaultRate)), nil
	})
	r.Register("l1l2", func(kw map[string]float64) (Regularizer[B], error) {
		return L1L2[B](kwarg(kw, "l1", DefaultRate), kwarg(kw, "l2", DefaultRate)), nil
	})
	r.Register("activity_l1", func(kw map[string]float64) (Regularizer[B], error) {
		return ActivityL1[B](kwarg(kw, "l", DefaultRate)), nil
	})
	r.Register("activity_l2", func(kw map[string]float64) (Regularizer[B], error) {
		return ActivityL2[B](kwarg(kw, "l", DefaultRate)), nil
	})
	r.Register("activity_l1l2", func(kw map[string]float64) (Regularizer[B], error) {
		return ActivityL1L2[B](kwarg(kw, "l1", DefaultRate), kwarg(kw, "l2", DefaultRate)), nil
	})

	r.Register("WeightRegularizer", func(kw map[string]float64) (Regularizer[B], error) {
		return NewWeight[B](kwarg(kw, "l1", 0), kwarg(kw, "l2", 0)), nil
	})
	r.Register("ActivityRegularizer", func(kw map[string]float64) (Regularizer[B], error) {
		return NewActivity[B](kwarg(kw, "l1", 0), kwarg(kw, "l2", 0)), nil
	})
	r.Register("EigenvalueRegularizer", func(kw map[string]float64) (Regularizer[B], error) {
		return NewEigenvalue[B](kwarg(kw, "k", 0)), nil
	})
	r.Register("None", func(map[string]float64) (Regularizer[B], error) {
		return NewNone[B](), nil
	})

	return r
}

// Register adds a builder under the given name, replacing any previous
// registration.
func (r *Registry[B]) Register(name string, b Builder[B]) {
	r.builders[name] = b
}

// Resolve resolves an identifier to a regularizer instance.
//
// The identifier is either an already-constructed Regularizer (returned
// as-is) or a string matched case-sensitively against the registered
// names, in which case the matching builder is invoked with kwargs
// (which may be nil).
//
// Fails with ErrUnknownRegularizer when nothing matches.
func (r *Registry[B]) Resolve(identifier any, kwargs map[string]float64) (Regularizer[B], error) {
	switch id := identifier.(type) {
	case Regularizer[B]:
		return id, nil
	case string:
		builder, ok := r.builders[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRegularizer, id)
		}
		return builder(kwargs)
	default:
		return nil, fmt.Errorf("%w: unsupported identifier type %T", ErrUnknownRegularizer, identifier)
	}
}

// FromConfig reconstructs a regularizer from a Describe summary.
func (r *Registry[B]) FromConfig(cfg Config) (Regularizer[B], error) {
	return r.Resolve(cfg.Name, map[string]float64{"l1": cfg.L1, "l2": cfg.L2})
}

// kwarg returns kwargs[key], or def when the key is absent.
func kwarg(kwargs map[string]float64, key string, def float64) float64 {
	if v, ok := kwargs[key]; ok {
		return v
	}
	return def
}
