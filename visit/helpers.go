package visit

import (
	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

// Collect returns every node of kind k in root, in pre-order.
func Collect(root ast.Node, k ast.Kind) []ast.Node {
	var out []ast.Node
	Visit(root, EnterKind(k, func(c *Cursor, n ast.Node) Result {
		out = append(out, n)
		return Continue()
	}))
	return out
}

// CountKinds tallies the nodes of root by kind.
func CountKinds(root ast.Node) map[ast.Kind]int {
	counts := map[ast.Kind]int{}
	Visit(root, &Visitor{
		Enter: func(c *Cursor, n ast.Node) Result {
			counts[n.Kind()]++
			return Continue()
		},
	})
	return counts
}
