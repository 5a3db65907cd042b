package ast

import (
	"testing"
)

func testField() *Field {
	return &Field{
		Name: &Name{Value: "hero"},
		Arguments: []*Argument{
			{Name: &Name{Value: "episode"}, Value: &EnumValue{Value: "EMPIRE"}},
		},
		SelectionSet: &SelectionSet{
			Selections: []Selection{
				&Field{Name: &Name{Value: "name"}},
			},
		},
	}
}

func TestChild(t *testing.T) {
	f := testField()
	if got := Child(f, "alias"); got != nil {
		t.Errorf("absent alias: got %v, want nil", got)
	}
	if got, ok := Child(f, "name").(*Name); !ok || got.Value != "hero" {
		t.Errorf("name: got %v", Child(f, "name"))
	}
	args, ok := Child(f, "arguments").([]Node)
	if !ok || len(args) != 1 {
		t.Fatalf("arguments: got %v", Child(f, "arguments"))
	}
	if args[0].(*Argument).Name.Value != "episode" {
		t.Errorf("arguments[0]: got %v", args[0])
	}
	if got := Child(f, "directives"); got != nil {
		t.Errorf("empty directives: got %v, want nil", got)
	}
	if got := Child(f, "nosuch"); got != nil {
		t.Errorf("unknown field: got %v, want nil", got)
	}
}

func TestCopyIsShallow(t *testing.T) {
	f := testField()
	cp := Copy(f).(*Field)
	if cp == f {
		t.Fatal("Copy returned the same pointer")
	}
	if cp.Name != f.Name || cp.SelectionSet != f.SelectionSet {
		t.Error("copy does not alias the original children")
	}
	cp.Alias = &Name{Value: "h"}
	if f.Alias != nil {
		t.Error("mutating the copy changed the original")
	}
}

func TestSetChild(t *testing.T) {
	t.Run("single node", func(t *testing.T) {
		f := &Field{}
		if err := SetChild(f, "name", &Name{Value: "x"}); err != nil {
			t.Fatal(err)
		}
		if f.Name == nil || f.Name.Value != "x" {
			t.Errorf("got %v", f.Name)
		}
	})
	t.Run("clear", func(t *testing.T) {
		f := testField()
		if err := SetChild(f, "selectionSet", nil); err != nil {
			t.Fatal(err)
		}
		if f.SelectionSet != nil {
			t.Errorf("got %v, want nil", f.SelectionSet)
		}
	})
	t.Run("interface slot", func(t *testing.T) {
		a := &Argument{Name: &Name{Value: "a"}}
		if err := SetChild(a, "value", &IntValue{Value: "1"}); err != nil {
			t.Fatal(err)
		}
		if _, ok := a.Value.(*IntValue); !ok {
			t.Errorf("got %T", a.Value)
		}
	})
	t.Run("generic slice converts", func(t *testing.T) {
		f := &Field{}
		err := SetChild(f, "arguments", []Node{
			&Argument{Name: &Name{Value: "a"}},
			&Argument{Name: &Name{Value: "b"}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(f.Arguments) != 2 || f.Arguments[1].Name.Value != "b" {
			t.Errorf("got %v", f.Arguments)
		}
	})
	t.Run("wrong node type", func(t *testing.T) {
		f := &Field{}
		if err := SetChild(f, "name", &IntValue{Value: "1"}); err == nil {
			t.Error("expected error placing IntValue in a Name slot")
		}
	})
	t.Run("wrong element type", func(t *testing.T) {
		f := &Field{}
		if err := SetChild(f, "arguments", []Node{&Name{Value: "a"}}); err == nil {
			t.Error("expected error placing Name in an Argument list")
		}
	})
	t.Run("unknown field", func(t *testing.T) {
		f := &Field{}
		if err := SetChild(f, "nosuch", &Name{}); err == nil {
			t.Error("expected error for unknown field")
		}
	})
}

func TestChildFieldsCoverAccessors(t *testing.T) {
	// Every declared child field must be readable through Child and, on a
	// freshly constructed node, report absent.
	for _, k := range Kinds() {
		n := newNode(k)
		for _, field := range ChildFields(k) {
			if got := Child(n, field); got != nil {
				t.Errorf("%s.%s on empty node: got %v, want nil", k, field, got)
			}
		}
	}
}
