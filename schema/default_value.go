package schema

import (
	"sync"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

// memo is a write-once slot filled by the first compute call that returns.
// A compute that panics leaves the slot empty, so the next reader runs
// compute again and hits the same failure instead of reading a zero value.
type memo[T any] struct {
	mu   sync.Mutex
	done bool
	v    T
}

func (m *memo[T]) get(compute func() T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.done {
		m.v = compute()
		m.done = true
	}
	return m.v
}

// DefaultValue is a declared default in exactly one of its two forms: a
// host value or a literal. The missing form is derived on demand by the
// value package and memoized here; each memo slot is written at most once
// and repeat reads return the identical cached result, so a DefaultValue
// is safe for concurrent use. Only successful computations stick.
type DefaultValue struct {
	value    any
	hasValue bool
	literal  ast.Value

	lit memo[ast.Value]
	val memo[any]
}

// NewDefaultValue declares a default given as a host value. v may be nil,
// meaning an explicit null default.
func NewDefaultValue(v any) *DefaultValue {
	return &DefaultValue{value: v, hasValue: true}
}

// NewDefaultLiteral declares a default given as a literal.
func NewDefaultLiteral(l ast.Value) *DefaultValue {
	return &DefaultValue{literal: l}
}

// HasValue reports whether the default was declared as a host value.
func (d *DefaultValue) HasValue() bool { return d.hasValue }

// Value returns the declared host value; meaningful only when HasValue.
func (d *DefaultValue) Value() any { return d.value }

// Literal returns the declared literal, or nil when the default was
// declared as a host value.
func (d *DefaultValue) Literal() ast.Value { return d.literal }

// MemoizeLiteral returns the declared literal if there is one, otherwise
// the memoized result of compute. compute runs until it returns once for
// the lifetime of d; a panicking compute is run again on the next call.
func (d *DefaultValue) MemoizeLiteral(compute func() ast.Value) ast.Value {
	if d.literal != nil {
		return d.literal
	}
	return d.lit.get(compute)
}

// MemoizeValue returns the declared host value if there is one, otherwise
// the memoized result of compute. compute runs until it returns once for
// the lifetime of d; a panicking compute is run again on the next call.
func (d *DefaultValue) MemoizeValue(compute func() any) any {
	if d.hasValue {
		return d.value
	}
	return d.val.get(compute)
}
