package schema

import (
	"sync"
	"testing"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

var intType = &Scalar{Name: "Int"}

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ  Type
		want string
	}{
		{intType, "Int"},
		{&NonNull{OfType: intType}, "Int!"},
		{&List{OfType: &NonNull{OfType: intType}}, "[Int!]"},
		{&InputObject{Name: "Point"}, "Point"},
	} {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestInputFieldRequired(t *testing.T) {
	for _, tc := range []struct {
		name  string
		field *InputField
		want  bool
	}{
		{"non-null no default", &InputField{Type: &NonNull{OfType: intType}}, true},
		{"non-null with default", &InputField{
			Type:         &NonNull{OfType: intType},
			DefaultValue: NewDefaultValue(3),
		}, false},
		{"nullable", &InputField{Type: intType}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.Required(); got != tc.want {
				t.Errorf("Required() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInputObjectField(t *testing.T) {
	obj := &InputObject{Name: "Point", Fields: []*InputField{
		{Name: "x", Type: intType},
		{Name: "y", Type: intType},
	}}
	if f := obj.Field("y"); f == nil || f.Name != "y" {
		t.Errorf("Field(y) = %v", f)
	}
	if f := obj.Field("z"); f != nil {
		t.Errorf("Field(z) = %v, want nil", f)
	}
}

func TestDefaultValueMemoizeOnce(t *testing.T) {
	d := NewDefaultValue(42)
	if !d.HasValue() || d.Value() != 42 {
		t.Fatal("declared value lost")
	}

	calls := 0
	lit := func() ast.Value {
		calls++
		return &ast.IntValue{Value: "42"}
	}
	first := d.MemoizeLiteral(lit)
	second := d.MemoizeLiteral(lit)
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
	if first != second {
		t.Error("repeat calls returned different results")
	}
}

func TestDefaultValueMemoizeFailureDoesNotStick(t *testing.T) {
	d := NewDefaultValue(42)
	calls := 0
	failing := func() ast.Value {
		calls++
		panic("no literal form")
	}
	// The slot fills only when compute returns, so a deterministic
	// failure repeats on every call instead of memoizing as success.
	for i := 1; i <= 2; i++ {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("call %d: want panic, got none", i)
				}
			}()
			d.MemoizeLiteral(failing)
		}()
	}
	if calls != 2 {
		t.Errorf("compute ran %d times, want 2", calls)
	}

	lit := &ast.IntValue{Value: "42"}
	if got := d.MemoizeLiteral(func() ast.Value { return lit }); got != ast.Value(lit) {
		t.Errorf("got %v after recovered failures, want the computed literal", got)
	}
}

func TestDefaultValueDeclaredFormsWinOverMemo(t *testing.T) {
	lit := &ast.IntValue{Value: "1"}
	d := NewDefaultLiteral(lit)
	got := d.MemoizeLiteral(func() ast.Value {
		t.Error("compute ran for a declared literal")
		return nil
	})
	if got != ast.Value(lit) {
		t.Errorf("got %v, want the declared literal", got)
	}

	dv := NewDefaultValue(nil)
	if !dv.HasValue() {
		t.Fatal("explicit null default must report HasValue")
	}
	if got := dv.MemoizeValue(func() any {
		t.Error("compute ran for a declared value")
		return 7
	}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestDefaultValueMemoizeConcurrent(t *testing.T) {
	d := NewDefaultLiteral(&ast.IntValue{Value: "7"})
	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.MemoizeValue(func() any { return new(int) })
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent reads saw different memoized values")
		}
	}
}
