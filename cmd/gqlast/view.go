package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

// kindToken matches the kind discriminator in a rendered JSON or YAML
// document.
var kindToken = regexp.MustCompile(`("?kind"?:\s*"?)([A-Za-z]+)`)

// colorizeKinds repaints the kind discriminators of a rendered document.
func colorizeKinds(doc string, c *color.Color) string {
	return kindToken.ReplaceAllStringFunc(doc, func(m string) string {
		sub := kindToken.FindStringSubmatch(m)
		return sub[1] + c.Sprint(sub[2])
	})
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	kindColor := color.New(color.FgCyan)
	if cfg.useColor(cc.Out) {
		kindColor.EnableColor()
	} else {
		kindColor.DisableColor()
	}
	for _, arg := range argsOrStdin(args) {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		var sb strings.Builder
		if err := cfg.writeDoc(&sb, doc); err != nil {
			return err
		}
		if _, err := fmt.Fprint(cc.Out, colorizeKinds(sb.String(), kindColor)); err != nil {
			return err
		}
	}
	return nil
}
