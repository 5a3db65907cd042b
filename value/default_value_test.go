package value

import (
	"testing"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/schema"
)

func TestLiteralDefaultValue(t *testing.T) {
	t.Run("nil usage", func(t *testing.T) {
		if got := LiteralDefaultValue(nil, intType); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("declared literal returned as-is", func(t *testing.T) {
		lit := &ast.IntValue{Value: "3"}
		d := schema.NewDefaultLiteral(lit)
		if got := LiteralDefaultValue(d, intType); got != ast.Value(lit) {
			t.Errorf("got %v, want the declared literal", got)
		}
	})

	t.Run("declared value converts once", func(t *testing.T) {
		d := schema.NewDefaultValue(42)
		first := LiteralDefaultValue(d, intType)
		if iv, ok := first.(*ast.IntValue); !ok || iv.Value != "42" {
			t.Fatalf("got %v", first)
		}
		second := LiteralDefaultValue(d, intType)
		if first != second {
			t.Error("repeat calls returned different literals")
		}
	})

	t.Run("unconvertible declared value panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if _, ok := r.(*NotRepresentableError); !ok {
				t.Errorf("recovered %v, want *NotRepresentableError", r)
			}
		}()
		d := schema.NewDefaultValue(nil)
		LiteralDefaultValue(d, &schema.NonNull{OfType: intType})
	})

	t.Run("failed conversion is not memoized", func(t *testing.T) {
		d := schema.NewDefaultValue(struct{ X int }{1})
		typ := &schema.NonNull{OfType: intType}
		for i := 1; i <= 2; i++ {
			func() {
				defer func() {
					if _, ok := recover().(*NotRepresentableError); !ok {
						t.Errorf("call %d: want *NotRepresentableError panic", i)
					}
				}()
				if got := LiteralDefaultValue(d, typ); got == nil {
					t.Errorf("call %d: returned nil instead of panicking", i)
				}
			}()
		}
	})
}

func TestCoercedDefaultValue(t *testing.T) {
	intDecoder := func(lit ast.Value, _ schema.Type) (any, bool) {
		iv, ok := lit.(*ast.IntValue)
		if !ok {
			return nil, false
		}
		return iv.Value, true
	}

	t.Run("declared value returned as-is", func(t *testing.T) {
		d := schema.NewDefaultValue(7)
		got := CoercedDefaultValue(d, intType, func(ast.Value, schema.Type) (any, bool) {
			t.Error("decoder ran for a declared value")
			return nil, false
		})
		if got != 7 {
			t.Errorf("got %v, want 7", got)
		}
	})

	t.Run("declared literal decodes once", func(t *testing.T) {
		calls := 0
		d := schema.NewDefaultLiteral(&ast.IntValue{Value: "9"})
		counting := func(lit ast.Value, typ schema.Type) (any, bool) {
			calls++
			return intDecoder(lit, typ)
		}
		first := CoercedDefaultValue(d, intType, counting)
		second := CoercedDefaultValue(d, intType, counting)
		if calls != 1 {
			t.Errorf("decoder ran %d times, want 1", calls)
		}
		if first != "9" || first != second {
			t.Errorf("got %v then %v", first, second)
		}
	})

	t.Run("rejecting decoder panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if _, ok := r.(*NotRepresentableError); !ok {
				t.Errorf("recovered %v, want *NotRepresentableError", r)
			}
		}()
		d := schema.NewDefaultLiteral(&ast.StringValue{Value: "x"})
		CoercedDefaultValue(d, intType, intDecoder)
	})

	t.Run("rejecting decoder runs again on repeat calls", func(t *testing.T) {
		calls := 0
		rejecting := func(ast.Value, schema.Type) (any, bool) {
			calls++
			return nil, false
		}
		d := schema.NewDefaultLiteral(&ast.StringValue{Value: "x"})
		for i := 1; i <= 2; i++ {
			func() {
				defer func() {
					if _, ok := recover().(*NotRepresentableError); !ok {
						t.Errorf("call %d: want *NotRepresentableError panic", i)
					}
				}()
				if got := CoercedDefaultValue(d, intType, rejecting); got == nil {
					t.Errorf("call %d: returned nil instead of panicking", i)
				}
			}()
		}
		if calls != 2 {
			t.Errorf("decoder ran %d times, want 2", calls)
		}
	})
}
