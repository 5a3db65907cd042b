// Package astdiff computes differences between two syntax trees: a
// structural change list addressed by path, and a human-readable rendering
// of the canonical JSON forms.
package astdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
)

// Change is one point of difference. From is nil for an addition, To is
// nil for a removal; both are set for an in-place change. Path addresses
// the containing slot, "/"-joined with sequence indexes inline, empty at
// the root.
type Change struct {
	Path string
	From ast.Node
	To   ast.Node
}

func (c Change) String() string {
	switch {
	case c.From == nil:
		return fmt.Sprintf("+ %s %s", c.Path, c.To.Kind())
	case c.To == nil:
		return fmt.Sprintf("- %s %s", c.Path, c.From.Kind())
	default:
		return fmt.Sprintf("~ %s %s -> %s", c.Path, c.From.Kind(), c.To.Kind())
	}
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b ast.Node) bool {
	return len(Changes(a, b)) == 0
}

// Changes walks from and to in parallel and returns every point where they
// differ. A kind or scalar-payload mismatch reports the node pair itself
// without descending further.
func Changes(from, to ast.Node) []Change {
	var out []Change
	changes(from, to, nil, &out)
	if debug.Diff() {
		debug.Logf("astdiff: %d changes\n", len(out))
	}
	return out
}

func changes(from, to ast.Node, path []string, out *[]Change) {
	if from == nil && to == nil {
		return
	}
	if from == nil || to == nil || from.Kind() != to.Kind() || !payloadEqual(from, to) {
		*out = append(*out, Change{Path: strings.Join(path, "/"), From: from, To: to})
		return
	}
	for _, field := range ast.ChildFields(from.Kind()) {
		fc := ast.Child(from, field)
		tc := ast.Child(to, field)
		fp := append(path, field)
		fl, fIsList := fc.([]ast.Node)
		tl, tIsList := tc.([]ast.Node)
		if fIsList || tIsList {
			n := max(len(fl), len(tl))
			for i := 0; i < n; i++ {
				var fe, te ast.Node
				if i < len(fl) {
					fe = fl[i]
				}
				if i < len(tl) {
					te = tl[i]
				}
				changes(fe, te, append(fp, fmt.Sprintf("%d", i)), out)
			}
			continue
		}
		fn, _ := fc.(ast.Node)
		tn, _ := tc.(ast.Node)
		changes(fn, tn, fp, out)
	}
}

// payloadEqual compares the scalar members two same-kind nodes carry.
func payloadEqual(a, b ast.Node) bool {
	switch a := a.(type) {
	case *ast.Name:
		return a.Value == b.(*ast.Name).Value
	case *ast.OperationDefinition:
		return a.Operation == b.(*ast.OperationDefinition).Operation
	case *ast.IntValue:
		return a.Value == b.(*ast.IntValue).Value
	case *ast.FloatValue:
		return a.Value == b.(*ast.FloatValue).Value
	case *ast.StringValue:
		bb := b.(*ast.StringValue)
		return a.Value == bb.Value && a.Block == bb.Block
	case *ast.BooleanValue:
		return a.Value == b.(*ast.BooleanValue).Value
	case *ast.EnumValue:
		return a.Value == b.(*ast.EnumValue).Value
	case *ast.OperationTypeDefinition:
		return a.Operation == b.(*ast.OperationTypeDefinition).Operation
	case *ast.DirectiveDefinition:
		return a.Repeatable == b.(*ast.DirectiveDefinition).Repeatable
	}
	return true
}

// Render returns a line diff of the canonical JSON forms of from and to,
// prefixed "-", "+" and " " per line. Equal trees render as the empty
// string.
func Render(from, to ast.Node) (string, error) {
	a, err := ast.ToJSONIndent(from)
	if err != nil {
		return "", err
	}
	b, err := ast.ToJSONIndent(to)
	if err != nil {
		return "", err
	}
	if string(a) == string(b) {
		return "", nil
	}
	dmp := diffmatchpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(string(a)+"\n", string(b)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
