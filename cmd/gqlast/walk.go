package main

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/visit"
)

func walk(cfg *WalkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Walk.Parse(cc, args)
	if err != nil {
		cfg.Walk.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var program *vm.Program
	if cfg.Where != "" {
		program, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range argsOrStdin(args) {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		if cfg.Counts {
			if err := printCounts(cfg, cc, doc); err != nil {
				return err
			}
			continue
		}
		if err := printWalk(cfg, cc, doc, program); err != nil {
			return err
		}
	}
	return nil
}

func printWalk(cfg *WalkConfig, cc *cli.Context, doc ast.Node, program *vm.Program) error {
	kindColor := color.New(color.FgCyan)
	if cfg.useColor(cc.Out) {
		kindColor.EnableColor()
	} else {
		kindColor.DisableColor()
	}
	var werr error
	visit.Visit(doc, &visit.Visitor{
		Enter: func(c *visit.Cursor, n ast.Node) visit.Result {
			path := pathString(c.Path())
			if program != nil {
				keep, err := vm.Run(program, map[string]any{
					"kind":  n.Kind().String(),
					"path":  path,
					"depth": len(c.Path()),
					"value": nodeValue(n),
				})
				if err != nil {
					werr = err
					return visit.Stop()
				}
				if ok, _ := keep.(bool); !ok {
					return visit.Continue()
				}
			}
			line := kindColor.Sprint(n.Kind().String())
			if v := nodeValue(n); v != "" {
				line += " " + v
			}
			if path != "" {
				line += "\t" + path
			}
			fmt.Fprintln(cc.Out, line)
			return visit.Continue()
		},
	})
	return werr
}

func printCounts(cfg *WalkConfig, cc *cli.Context, doc ast.Node) error {
	counts := visit.CountKinds(doc)
	for _, k := range ast.Kinds() {
		if counts[k] == 0 {
			continue
		}
		fmt.Fprintf(cc.Out, "%d\t%s\n", counts[k], k)
	}
	return nil
}

func pathString(steps []visit.Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

// nodeValue renders the scalar payload a node carries, if any.
func nodeValue(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Name:
		return n.Value
	case *ast.IntValue:
		return n.Value
	case *ast.FloatValue:
		return n.Value
	case *ast.StringValue:
		return fmt.Sprintf("%q", n.Value)
	case *ast.BooleanValue:
		return fmt.Sprintf("%v", n.Value)
	case *ast.EnumValue:
		return n.Value
	case *ast.OperationDefinition:
		return string(n.Operation)
	}
	return ""
}
