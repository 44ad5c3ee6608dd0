package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// MainConfig holds the flags shared by every subcommand.
type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output even when not a terminal'"`

	Main *cli.Command
}

// MainCommand builds the sdl command tree: fmt, get, query, diff,
// patch.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sdl").
		WithSynopsis("sdl [opts] command [opts] [files]").
		WithDescription("sdl reads and writes Simple Declarative Language documents.").
		WithOpts(opts...).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
		)
}

// namedSource pairs an opened reader with a display name for error
// messages.
type namedSource struct {
	Name string
	R    io.Reader
}

// sourcesOrStdin opens each of paths, or falls back to cc.In if paths
// is empty. The core library only consumes a line-producing text
// source; file I/O is this CLI's job.
func sourcesOrStdin(cc *cli.Context, paths []string) ([]namedSource, func(), error) {
	if len(paths) == 0 {
		return []namedSource{{Name: "-", R: cc.In}}, func() {}, nil
	}
	srcs := make([]namedSource, len(paths))
	files := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %s", cli.ErrUsage, err)
		}
		files = append(files, f)
		srcs[i] = namedSource{Name: p, R: f}
	}
	return srcs, closeAll, nil
}
