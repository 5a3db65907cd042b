package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/IAmCuriousDeveloper/go-graphql/ast"
)

type MainConfig struct {
	J       bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y       bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color   bool `cli:"name=color desc='output with color'"`
	Compact bool `cli:"name=compact desc='output without indentation'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func gqlastMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readRaw returns the JSON bytes of a document argument, converting from
// YAML when the -y flag or the file extension says so. "-" reads stdin.
func (cfg *MainConfig) readRaw(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.Y || strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting %s from yaml: %w", arg, err)
		}
	}
	return d, nil
}

func (cfg *MainConfig) readDoc(arg string) (ast.Node, error) {
	d, err := cfg.readRaw(arg)
	if err != nil {
		return nil, err
	}
	n, err := ast.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return n, nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, n ast.Node) error {
	var d []byte
	var err error
	if cfg.Compact {
		d, err = ast.ToJSON(n)
	} else {
		d, err = ast.ToJSONIndent(n)
	}
	if err != nil {
		return err
	}
	if cfg.Y {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// useColor honors an explicit -color flag and otherwise defaults to
// colorizing only terminal output.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// argsOrStdin substitutes reading stdin when no file arguments are given.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type WalkConfig struct {
	*MainConfig
	Where  string `cli:"name=where desc='keep nodes for which this expression is true'"`
	Counts bool   `cli:"name=counts desc='print per-kind node counts instead of the visit order'"`

	Walk *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Structural bool `cli:"name=s desc='print structural changes instead of a line diff'"`

	Diff *cli.Command
}
