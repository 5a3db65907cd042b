package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
	"github.com/IAmCuriousDeveloper/go-graphql/debug"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires an RFC 6902 patch argument", cli.ErrUsage)
	}
	patchArg := []byte(args[0])
	if cfg.File {
		patchArg, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	ops, err := jsonpatch.DecodePatch(patchArg)
	if err != nil {
		return fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		raw, err := cfg.readRaw(arg)
		if err != nil {
			return err
		}
		patched, err := ops.Apply(raw)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if debug.Patch() {
			debug.Logf("patch: %s: %d bytes -> %d bytes\n", arg, len(raw), len(patched))
		}
		// Decode through the node types so a patch cannot emit a
		// malformed document.
		doc, err := ast.FromJSON(patched)
		if err != nil {
			return fmt.Errorf("patch result for %s is not a valid document: %w", arg, err)
		}
		if err := cfg.writeDoc(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
