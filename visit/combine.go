package visit

import (
	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
)

// stopAll marks a component visitor that returned Stop: it is muted for the
// rest of the walk, without aborting the walk itself.
var stopAll = new(int)

// Combine merges visitors into a single visitor running them in order over
// one traversal. Each component keeps its own skip state: SkipSubtree mutes
// a component until its node is left, and Stop mutes that component for the
// rest of the walk instead of aborting the traversal. The first component
// returning an edit (Delete or Replace) for a node wins and the remaining
// components are not consulted for that node.
func Combine(visitors ...*Visitor) *Visitor {
	skipping := make([]any, len(visitors))

	enter := func(c *Cursor, n ast.Node) Result {
		for i, v := range visitors {
			if skipping[i] != nil {
				continue
			}
			fn := v.handler(n.Kind(), false)
			if fn == nil {
				continue
			}
			r := fn(c, n)
			switch r.action {
			case actionSkip:
				skipping[i] = any(n)
			case actionStop:
				if debug.Combine() {
					debug.Logf("combine: component %d stopped at %s\n", i, n.Kind())
				}
				skipping[i] = stopAll
			case actionDelete, actionReplace:
				return r
			}
		}
		return Continue()
	}

	leave := func(c *Cursor, n ast.Node) Result {
		for i, v := range visitors {
			if skipping[i] == nil {
				fn := v.handler(n.Kind(), true)
				if fn == nil {
					continue
				}
				r := fn(c, n)
				switch r.action {
				case actionStop:
					skipping[i] = stopAll
				case actionDelete, actionReplace:
					return r
				}
			} else if skipping[i] == any(n) {
				skipping[i] = nil
			}
		}
		return Continue()
	}

	return &Visitor{Enter: enter, Leave: leave}
}
