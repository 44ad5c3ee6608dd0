package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/sdlquery"
)

// QueryConfig is the config for "sdl query".
type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

// QueryCommand selects a document's top-level tags matching an
// expr-lang boolean expression.
func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis(`query '<expr>' [files]`).
		WithDescription("select a document's top-level tags matching an expr-lang boolean expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	expression := args[0]
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
		matches, err := sdlquery.Select(tags, expression)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		for _, t := range matches {
			fmt.Fprintln(cc.Out, t.Serialize(""))
		}
	}
	return nil
}
