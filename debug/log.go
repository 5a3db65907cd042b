package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

// Logf writes a debug line to stderr, pretty-printing structured args:
// AST nodes render as indented kind-discriminated JSON, generic JSON
// shapes as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			d, err := ast.ToJSONIndent(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
