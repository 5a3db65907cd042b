package visit

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

func recorder(tag string, log *[]string) *Visitor {
	return &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			*log = append(*log, fmt.Sprintf("%s enter %s", tag, n.Kind()))
			return Continue()
		},
		Leave: func(c *Cursor, n ast.Node) Result {
			*log = append(*log, fmt.Sprintf("%s leave %s", tag, n.Kind()))
			return Continue()
		},
	}
}

func TestCombineRunsInOrder(t *testing.T) {
	var log []string
	Visit(queryDoc("a"), Combine(recorder("v1", &log), recorder("v2", &log)))
	want := []string{
		"v1 enter Document", "v2 enter Document",
		"v1 enter OperationDefinition", "v2 enter OperationDefinition",
		"v1 enter SelectionSet", "v2 enter SelectionSet",
		"v1 enter Field", "v2 enter Field",
		"v1 enter Name", "v2 enter Name",
		"v1 leave Name", "v2 leave Name",
		"v1 leave Field", "v2 leave Field",
		"v1 leave SelectionSet", "v2 leave SelectionSet",
		"v1 leave OperationDefinition", "v2 leave OperationDefinition",
		"v1 leave Document", "v2 leave Document",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCombineSkipIsPerComponent(t *testing.T) {
	var log []string
	skipper := &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			log = append(log, "v1 enter "+n.Kind().String())
			if n.Kind() == ast.KindField {
				return SkipSubtree()
			}
			return Continue()
		},
		Leave: func(c *Cursor, n ast.Node) Result {
			log = append(log, "v1 leave "+n.Kind().String())
			return Continue()
		},
	}
	Visit(queryDoc("a"), Combine(skipper, recorder("v2", &log)))

	// v2 still sees the Field subtree; v1 is muted inside it, including
	// the Field's own leave, and resumes after it.
	want := []string{
		"v1 enter Document", "v2 enter Document",
		"v1 enter OperationDefinition", "v2 enter OperationDefinition",
		"v1 enter SelectionSet", "v2 enter SelectionSet",
		"v1 enter Field", "v2 enter Field",
		"v2 enter Name",
		"v2 leave Name",
		"v2 leave Field",
		"v1 leave SelectionSet", "v2 leave SelectionSet",
		"v1 leave OperationDefinition", "v2 leave OperationDefinition",
		"v1 leave Document", "v2 leave Document",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCombineStopIsComponentLocal(t *testing.T) {
	var log []string
	stopper := &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			log = append(log, "v1 enter "+n.Kind().String())
			if n.Kind() == ast.KindField {
				return Stop()
			}
			return Continue()
		},
	}
	Visit(queryDoc("a", "b"), Combine(stopper, recorder("v2", &log)))

	var v1Fields, v2Names int
	for _, l := range log {
		if l == "v1 enter Field" {
			v1Fields++
		}
		if l == "v2 enter Name" {
			v2Names++
		}
	}
	if v1Fields != 1 {
		t.Errorf("stopped component entered %d fields, want 1", v1Fields)
	}
	if v2Names != 2 {
		t.Errorf("other component entered %d names, want 2", v2Names)
	}
}

func TestCombineFirstEditWins(t *testing.T) {
	var v2SawName bool
	editor := &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			if n.Kind() == ast.KindName {
				return Replace(&ast.Name{Value: "renamed"})
			}
			return Continue()
		},
	}
	observer := &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			if n.Kind() == ast.KindName {
				v2SawName = true
			}
			return Continue()
		},
	}
	got := Visit(queryDoc("a"), Combine(editor, observer)).(*ast.Document)
	f := got.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	if f.Name.Value != "renamed" {
		t.Errorf("got %q, want %q", f.Name.Value, "renamed")
	}
	if v2SawName {
		t.Error("later component ran for an already-edited node")
	}
}
