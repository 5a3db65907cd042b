package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/IAmCuriousDeveloper/go-graphql/astdiff"
)

type diffColors struct {
	del *color.Color
	ins *color.Color
	chg *color.Color
}

func newDiffColors(on bool) *diffColors {
	c := &diffColors{
		del: color.New(color.FgRed),
		ins: color.New(color.FgGreen),
		chg: color.New(color.FgYellow),
	}
	for _, cc := range []*color.Color{c.del, c.ins, c.chg} {
		if on {
			cc.EnableColor()
		} else {
			cc.DisableColor()
		}
	}
	return c
}

// line repaints one diff line by its prefix; context lines stay plain.
func (c *diffColors) line(s string) string {
	switch {
	case strings.HasPrefix(s, "- "):
		return c.del.Sprint(s)
	case strings.HasPrefix(s, "+ "):
		return c.ins.Sprint(s)
	case strings.HasPrefix(s, "~ "):
		return c.chg.Sprint(s)
	}
	return s
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	from, err := cfg.readDoc(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readDoc(args[1])
	if err != nil {
		return err
	}
	colors := newDiffColors(cfg.useColor(cc.Out))
	if cfg.Structural {
		for _, c := range astdiff.Changes(from, to) {
			fmt.Fprintln(cc.Out, colors.line(c.String()))
		}
		return nil
	}
	out, err := astdiff.Render(from, to)
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fmt.Fprintln(cc.Out, colors.line(line))
	}
	return nil
}
