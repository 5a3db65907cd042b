package value

import (
	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/schema"
)

// Decoder converts a literal back to a host value against an input type.
// ok reports whether the literal fits the type. The decoder is supplied by
// the caller; this package only produces literals.
type Decoder func(lit ast.Value, t schema.Type) (any, bool)

// LiteralDefaultValue returns the literal form of a declared default,
// converting and memoizing it on first use when the default was declared
// as a host value. A declared value with no literal form for t is a
// contract violation in the type definition: LiteralDefaultValue panics
// with *NotRepresentableError.
func LiteralDefaultValue(d *schema.DefaultValue, t schema.Type) ast.Value {
	if d == nil {
		return nil
	}
	return d.MemoizeLiteral(func() ast.Value {
		lit, ok := ValueToLiteral(d.Value(), t)
		if !ok {
			panic(&NotRepresentableError{
				Value:   d.Value(),
				Type:    t.String(),
				Message: "declared default has no literal form",
			})
		}
		return lit
	})
}

// CoercedDefaultValue returns the host form of a declared default, decoding
// and memoizing it on first use when the default was declared as a literal.
// A declared literal decode rejects is a contract violation in the type
// definition: CoercedDefaultValue panics with *NotRepresentableError.
func CoercedDefaultValue(d *schema.DefaultValue, t schema.Type, decode Decoder) any {
	if d == nil {
		return nil
	}
	return d.MemoizeValue(func() any {
		v, ok := decode(d.Literal(), t)
		if !ok {
			panic(&NotRepresentableError{
				Value:   d.Literal(),
				Type:    t.String(),
				Message: "declared default literal does not decode",
			})
		}
		return v
	})
}
