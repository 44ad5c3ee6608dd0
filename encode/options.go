package encode

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sdl-org/sdl-go/tag"
)

// Options configures Render.
type Options struct {
	colors   *Colors
	force    bool
	maxDepth int
}

// Option is a functional option for Render.
type Option func(*Options)

// WithPalette overrides the default color palette.
func WithPalette(c *Colors) Option {
	return func(o *Options) { o.colors = c }
}

// WithForceColor renders in color even when w is not a detected
// terminal (used by the CLI's color flag).
func WithForceColor() Option {
	return func(o *Options) { o.force = true }
}

// WithMaxDepth rejects a document whose tag nesting depth exceeds n
// before any output is written. Top-level tags are at depth 1, so n = 1
// rejects any tag that has children; parse.WithMaxDepth counts open
// blocks instead, so for the same n it accepts one more level. n <= 0
// means unlimited, the default.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.maxDepth = n }
}

// Render writes tags to w, colorized if w is a terminal (or
// WithForceColor was given), plain SDL text otherwise.
func Render(w io.Writer, tags []*tag.Tag, opts ...Option) error {
	o := &Options{colors: NewColors()}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxDepth > 0 {
		if d := maxDepthOf(tags, 1); d > o.maxDepth {
			return fmt.Errorf("encode: block nesting depth %d exceeds maximum %d", d, o.maxDepth)
		}
	}
	var out string
	if o.force || SupportsColor(w) {
		// fatih/color turns itself off when the process's stdout is not
		// a terminal; a forced render lifts that for its duration.
		if o.force && color.NoColor {
			color.NoColor = false
			defer func() { color.NoColor = true }()
		}
		out = ToColorText(tags, o.colors)
	} else {
		out = tag.SerializeDocument(tags)
	}
	_, err := io.WriteString(w, out)
	return err
}

func maxDepthOf(tags []*tag.Tag, depth int) int {
	max := depth
	for _, t := range tags {
		kids := t.Children()
		if len(kids) == 0 {
			continue
		}
		if d := maxDepthOf(kids, depth+1); d > max {
			max = d
		}
	}
	return max
}
