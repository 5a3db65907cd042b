package astdiff

import (
	"strings"
	"testing"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

func doc(fieldNames ...string) *ast.Document {
	ss := &ast.SelectionSet{}
	for _, name := range fieldNames {
		ss.Selections = append(ss.Selections, &ast.Field{Name: &ast.Name{Value: name}})
	}
	return &ast.Document{Definitions: []ast.Definition{
		&ast.OperationDefinition{Operation: ast.Query, SelectionSet: ss},
	}}
}

func TestEqual(t *testing.T) {
	if !Equal(doc("a", "b"), doc("a", "b")) {
		t.Error("identical trees reported unequal")
	}
	if Equal(doc("a"), doc("b")) {
		t.Error("different trees reported equal")
	}
}

func TestChanges(t *testing.T) {
	t.Run("renamed field", func(t *testing.T) {
		cs := Changes(doc("a", "b"), doc("a", "c"))
		if len(cs) != 1 {
			t.Fatalf("got %d changes: %v", len(cs), cs)
		}
		c := cs[0]
		wantPath := "definitions/0/selectionSet/selections/1/name"
		if c.Path != wantPath {
			t.Errorf("path = %q, want %q", c.Path, wantPath)
		}
		if c.From.(*ast.Name).Value != "b" || c.To.(*ast.Name).Value != "c" {
			t.Errorf("change = %v", c)
		}
	})

	t.Run("added selection", func(t *testing.T) {
		cs := Changes(doc("a"), doc("a", "b"))
		if len(cs) != 1 {
			t.Fatalf("got %d changes: %v", len(cs), cs)
		}
		if cs[0].From != nil || cs[0].To == nil {
			t.Errorf("change = %v, want addition", cs[0])
		}
	})

	t.Run("kind change stops descent", func(t *testing.T) {
		from := doc("a")
		to := doc("a")
		to.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0] =
			&ast.FragmentSpread{Name: &ast.Name{Value: "a"}}
		cs := Changes(from, to)
		if len(cs) != 1 {
			t.Fatalf("got %d changes: %v", len(cs), cs)
		}
		if cs[0].Path != "definitions/0/selectionSet/selections/0" {
			t.Errorf("path = %q", cs[0].Path)
		}
	})
}

func TestRender(t *testing.T) {
	out, err := Render(doc("a"), doc("b"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `- `) || !strings.Contains(out, `+ `) {
		t.Errorf("render lacks -/+ lines:\n%s", out)
	}
	if !strings.Contains(out, `"a"`) || !strings.Contains(out, `"b"`) {
		t.Errorf("render lacks the changed values:\n%s", out)
	}

	same, err := Render(doc("a"), doc("a"))
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("equal trees rendered %q", same)
	}
}
