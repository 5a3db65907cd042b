package value

import (
	"reflect"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
	"github.com/IAmCuriousDeveloper/go-graphql/schema"
)

// ValueToLiteral coerces a host value against an input type and returns its
// literal form. ok is false when the value does not fit the type: a nullish
// value for a non-null type, a non-sequence shape mismatch, an undeclared
// or missing-required input-object field, or a custom scalar encoder
// rejecting the value.
//
// Rules, in order: a non-null type unwraps after rejecting nullish values;
// Undefined is not coercible on its own; nil becomes Null; for list types a
// sequence converts per element while any other value converts against the
// element type directly; input objects accept only string-keyed maps whose
// keys are all declared, and emit fields in declared order, dropping
// undefined entries unless the field is required; scalars go through the
// type's EncodeLiteral hook when set, else EncodeScalar.
func ValueToLiteral(v any, t schema.Type) (ast.Value, bool) {
	if nn, ok := t.(*schema.NonNull); ok {
		if isNullish(v) {
			return nil, false
		}
		return ValueToLiteral(v, nn.OfType)
	}
	if IsUndefined(v) {
		return nil, false
	}
	if isNull(v) {
		return &ast.NullValue{}, true
	}

	switch t := t.(type) {
	case *schema.List:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			// A single value coerces as the sole element; the inner
			// literal stands in for the one-element list.
			return ValueToLiteral(v, t.OfType)
		}
		out := &ast.ListValue{Values: make([]ast.Value, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			item, ok := ValueToLiteral(rv.Index(i).Interface(), t.OfType)
			if !ok {
				return nil, false
			}
			out.Values = append(out.Values, item)
		}
		return out, true

	case *schema.InputObject:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		// Closed world: a key with no declared field fails the whole
		// conversion.
		iter := rv.MapRange()
		for iter.Next() {
			if t.Field(iter.Key().String()) == nil {
				if debug.Value() {
					debug.Logf("value: undeclared field %q on %s\n",
						iter.Key().String(), t.Name)
				}
				return nil, false
			}
		}
		out := &ast.ObjectValue{}
		for _, f := range t.Fields {
			fv := rv.MapIndex(reflect.ValueOf(f.Name))
			if !fv.IsValid() || IsUndefined(fv.Interface()) {
				if f.Required() {
					return nil, false
				}
				continue
			}
			fieldLit, ok := ValueToLiteral(fv.Interface(), f.Type)
			if !ok {
				return nil, false
			}
			out.Fields = append(out.Fields, &ast.ObjectField{
				Name:  &ast.Name{Value: f.Name},
				Value: fieldLit,
			})
		}
		return out, true

	case *schema.Scalar:
		if t.EncodeLiteral != nil {
			return t.EncodeLiteral(v)
		}
		return EncodeScalar(v), true
	}
	return nil, false
}
