package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/visit"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires one argument, a node path like definitions/0", cli.ErrUsage)
	}
	target := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		removed := false
		out := visit.Visit(doc, &visit.Visitor{
			Enter: func(c *visit.Cursor, n ast.Node) visit.Result {
				if pathString(c.Path()) == target {
					removed = true
					return visit.Delete()
				}
				return visit.Continue()
			},
		})
		if !removed {
			return fmt.Errorf("no node at %q in %s", target, arg)
		}
		if out == nil {
			return fmt.Errorf("rm %q would remove the whole document %s", target, arg)
		}
		if err := cfg.writeDoc(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
