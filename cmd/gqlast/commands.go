package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gqlast").
		WithSynopsis("gqlast [opts] command [opts]").
		WithDescription("gqlast is a tool for working with query-language syntax trees serialized as JSON or YAML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gqlastMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			WalkCommand(cfg),
			RmCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("re-encode syntax tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func WalkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WalkConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Walk, "walk").
		WithAliases("w").
		WithOpts(opts...).
		WithSynopsis("walk [-where expr] [-counts] [files]").
		WithDescription("print the visit order of syntax tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return walk(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithSynopsis("rm <path> [files]").
		WithDescription("remove the node at a path from syntax tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [opts] <patch> [files]").
		WithDescription("apply an RFC 6902 patch to syntax tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-s] a b").
		WithDescription("diff two syntax tree documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
