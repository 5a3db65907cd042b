package ast

import (
	"slices"
	"testing"
)

func TestChildFieldOrder(t *testing.T) {
	for _, tc := range []struct {
		kind Kind
		want []string
	}{
		{KindDocument, []string{"definitions"}},
		{KindOperationDefinition, []string{"name", "variableDefinitions", "directives", "selectionSet"}},
		{KindField, []string{"alias", "name", "arguments", "directives", "selectionSet"}},
		{KindFragmentDefinition, []string{"name", "variableDefinitions", "typeCondition", "directives", "selectionSet"}},
		{KindInputValueDefinition, []string{"description", "name", "type", "defaultValue", "directives"}},
		{KindDirectiveDefinition, []string{"description", "name", "arguments", "locations"}},
		{KindIntValue, []string{}},
	} {
		t.Run(string(tc.kind), func(t *testing.T) {
			got := ChildFields(tc.kind)
			if !slices.Equal(got, tc.want) {
				t.Errorf("ChildFields(%s) = %v, want %v", tc.kind, got, tc.want)
			}
		})
	}
}

func TestKindsSortedAndValid(t *testing.T) {
	ks := Kinds()
	if len(ks) != 43 {
		t.Fatalf("got %d kinds, want 43", len(ks))
	}
	if !slices.IsSorted(ks) {
		t.Errorf("Kinds() not sorted: %v", ks)
	}
	for _, k := range ks {
		if !k.IsValid() {
			t.Errorf("kind %q not valid", k)
		}
	}
}

func TestKindUnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("Field")); err != nil {
		t.Fatal(err)
	}
	if k != KindField {
		t.Errorf("got %q, want %q", k, KindField)
	}
	if err := k.UnmarshalText([]byte("Fjeld")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
