package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/internal/sdldiff"
)

// DiffConfig is the config for "sdl diff".
type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

// DiffCommand prints a line-level diff between the canonical forms of
// two documents.
func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the canonical serialization of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	a, err := canonicalize(args[0])
	if err != nil {
		return err
	}
	b, err := canonicalize(args[1])
	if err != nil {
		return err
	}
	diffs := sdldiff.Lines(a, b)
	fmt.Fprint(cc.Out, sdldiff.Format(diffs))
	return nil
}

func canonicalize(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", cli.ErrUsage, err)
	}
	defer f.Close()
	tags, err := sdl.ParseDocument(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return sdl.Serialize(tags), nil
}
