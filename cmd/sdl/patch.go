package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/sdljson"
)

// PatchConfig is the config for "sdl patch".
type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

// PatchCommand renders a document to JSON, applies an RFC 6902 JSON
// patch, and prints the patched JSON.
func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <file> <patch.json>").
		WithDescription("apply a JSON patch to a document's JSON export").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a document and a patch file", cli.ErrUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", cli.ErrUsage, err)
	}
	defer f.Close()
	tags, err := sdl.ParseDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	patchBytes, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("%w: %s", cli.ErrUsage, err)
	}
	out, err := sdljson.ApplyPatch(tags, patchBytes)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(out))
	return nil
}
