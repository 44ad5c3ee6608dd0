package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/encode"
)

// FmtConfig is the config for "sdl fmt".
type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

// FmtCommand parses each source and re-serializes it in canonical
// form.
func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("parse and re-serialize documents in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return runFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	srcs, closeAll, err := sourcesOrStdin(cc, args)
	if err != nil {
		return err
	}
	defer closeAll()
	var opts []encode.Option
	if cfg.Color {
		opts = append(opts, encode.WithForceColor())
	}
	for _, src := range srcs {
		tags, err := sdl.ParseDocument(src.R)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		if err := encode.Render(cc.Out, tags, opts...); err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
	}
	return nil
}
