package main

import (
	"errors"
	"fmt"
	"os"

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

	return cli.NewCommandAt(&cfg.Main, "ids-light").
		WithSynopsis("ids-light [opts] command [opts]").
		WithDescription("ids-light converts IDS-Light documents to buildingSMART IDS 1.0 XML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return idsMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ValidateCommand(cfg),
			ShowCommand(cfg),
			RulesCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func idsMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
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

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "co").
		WithSynopsis("convert [files]").
		WithDescription("parse, validate and convert IDS-Light documents to IDS 1.0 XML").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v", "va").
		WithSynopsis("validate [files]").
		WithDescription("parse and validate IDS-Light documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s", "sh").
		WithSynopsis("show [-json] [files]").
		WithDescription("show the parsed document in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func RulesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RulesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rules, "rules").
		WithAliases("r", "ru").
		WithSynopsis("rules [-m expr] [-json] [files]").
		WithDescription("list rules, optionally selected by expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rules(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the converted XML of two IDS-Light documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("apply a JSON merge patch to IDS-Light documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
