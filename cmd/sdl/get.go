package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/tag"
)

// GetConfig is the config for "sdl get".
type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

// GetCommand navigates a dotted path of child names from each
// document's top-level tags. This is CLI-only convenience over
// Tag.Children/Tag.Name, not part of the core library.
func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <name.path> [files]").
		WithDescription("print tags reached by a dotted path of child names").
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a dotted name path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	srcs, closeAll, err := sourcesOrStdin(cc, args[1:])
	if err != nil {
		return err
	}
	defer closeAll()
	for _, src := range srcs {
		tags, err := sdl.ParseDocument(src.R)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		for _, t := range navigate(tags, path) {
			fmt.Fprintln(cc.Out, t.Serialize(""))
		}
	}
	return nil
}

func navigate(tags []*tag.Tag, path []string) []*tag.Tag {
	if len(path) == 0 {
		return tags
	}
	var matches []*tag.Tag
	for _, t := range tags {
		if t.Name() == path[0] {
			matches = append(matches, t)
		}
	}
	for _, name := range path[1:] {
		var next []*tag.Tag
		for _, t := range matches {
			for _, c := range t.Children() {
				if c.Name() == name {
					next = append(next, c)
				}
			}
		}
		matches = next
	}
	return matches
}
