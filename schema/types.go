// Package schema defines the input type system consumed by the value
// package's coercion routines: the closed set of type forms a literal or
// host value can be coerced against.
package schema

import (
	"fmt"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

// Type is an input type form. The set of implementations is closed:
// NonNull, List, Scalar and InputObject.
type Type interface {
	fmt.Stringer
	typeForm()
}

// NonNull wraps a type that does not admit null. The wrapped type is never
// itself a NonNull.
type NonNull struct {
	OfType Type
}

// List wraps the element type of a list.
type List struct {
	OfType Type
}

// Scalar is a leaf type. EncodeLiteral, when set, overrides the structural
// fallback encoding of host values for this scalar; returning false means
// the value has no literal form and the coercion reports failure.
type Scalar struct {
	Name          string
	EncodeLiteral func(v any) (ast.Value, bool)
}

// InputObject is a named record type. Field order in Fields is the declared
// order and is preserved by coercion output.
type InputObject struct {
	Name   string
	Fields []*InputField
}

// InputField is one declared field of an InputObject.
type InputField struct {
	Name         string
	Type         Type
	DefaultValue *DefaultValue
}

// Required reports whether the field must be supplied: its type is non-null
// and it declares no default.
func (f *InputField) Required() bool {
	_, nonNull := f.Type.(*NonNull)
	return nonNull && f.DefaultValue == nil
}

// Field returns the declared field named name, or nil.
func (t *InputObject) Field(name string) *InputField {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (t *NonNull) String() string     { return t.OfType.String() + "!" }
func (t *List) String() string        { return "[" + t.OfType.String() + "]" }
func (t *Scalar) String() string      { return t.Name }
func (t *InputObject) String() string { return t.Name }

func (*NonNull) typeForm()     {}
func (*List) typeForm()        {}
func (*Scalar) typeForm()      {}
func (*InputObject) typeForm() {}
