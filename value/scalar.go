// Package value implements type-directed conversion between host values
// and constant literals: the structural scalar encoding, the coercion of
// host values against input types, and the memoized two-way conversion of
// declared defaults.
package value

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
)

type undefinedValue struct{}

// Undefined marks an absent host value, as distinct from an explicit null.
// An undefined input-object entry reads as "field not provided"; nil reads
// as a provided null.
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// isNull reports whether v is a provided null: untyped nil or a nil
// pointer, map, slice or interface.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	if IsUndefined(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isNullish(v any) bool {
	return IsUndefined(v) || isNull(v)
}

// intString matches the canonical decimal rendering of an integer.
var intString = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)$`)

// EncodeScalar converts a host value to a literal structurally, without a
// type: null and undefined encode as Null, bool as Boolean, strings as
// String, numbers as Int when their canonical decimal rendering is
// integral and Float otherwise (non-finite numbers as Null), sequences as
// List, and string-keyed maps as Object with keys in sorted order and
// undefined-valued keys dropped. Any other value is a contract violation:
// EncodeScalar panics with *NotRepresentableError.
func EncodeScalar(v any) ast.Value {
	if isNullish(v) {
		return &ast.NullValue{}
	}
	switch x := v.(type) {
	case bool:
		return &ast.BooleanValue{Value: x}
	case string:
		return &ast.StringValue{Value: x}
	case int:
		return &ast.IntValue{Value: strconv.FormatInt(int64(x), 10)}
	case int8:
		return &ast.IntValue{Value: strconv.FormatInt(int64(x), 10)}
	case int16:
		return &ast.IntValue{Value: strconv.FormatInt(int64(x), 10)}
	case int32:
		return &ast.IntValue{Value: strconv.FormatInt(int64(x), 10)}
	case int64:
		return &ast.IntValue{Value: strconv.FormatInt(x, 10)}
	case uint:
		return &ast.IntValue{Value: strconv.FormatUint(uint64(x), 10)}
	case uint8:
		return &ast.IntValue{Value: strconv.FormatUint(uint64(x), 10)}
	case uint16:
		return &ast.IntValue{Value: strconv.FormatUint(uint64(x), 10)}
	case uint32:
		return &ast.IntValue{Value: strconv.FormatUint(uint64(x), 10)}
	case uint64:
		return &ast.IntValue{Value: strconv.FormatUint(x, 10)}
	case float32:
		return encodeFloat(float64(x))
	case float64:
		return encodeFloat(x)
	case json.Number:
		return encodeNumberString(string(x), v)
	case ast.Value:
		// Already a literal; pass through unchanged.
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := &ast.ListValue{Values: make([]ast.Value, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			out.Values = append(out.Values, EncodeScalar(rv.Index(i).Interface()))
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		out := &ast.ObjectValue{}
		for _, k := range keys {
			fv := rv.MapIndex(reflect.ValueOf(k)).Interface()
			if IsUndefined(fv) {
				continue
			}
			out.Fields = append(out.Fields, &ast.ObjectField{
				Name:  &ast.Name{Value: k},
				Value: EncodeScalar(fv),
			})
		}
		return out
	case reflect.Pointer:
		return EncodeScalar(rv.Elem().Interface())
	}
	if debug.Value() {
		debug.Logf("value: no literal form for %T: ", v)
		debug.LogAny(v)
	}
	panic(&NotRepresentableError{Value: v, Message: "no literal form"})
}

func encodeFloat(f float64) ast.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &ast.NullValue{}
	}
	return encodeNumberString(strconv.FormatFloat(f, 'f', -1, 64), f)
}

func encodeNumberString(s string, orig any) ast.Value {
	if intString.MatchString(s) {
		return &ast.IntValue{Value: s}
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		panic(&NotRepresentableError{Value: orig, Message: "malformed number"})
	}
	return &ast.FloatValue{Value: s}
}
