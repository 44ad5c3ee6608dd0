// Package sdllog is the ambient debug-logging facility: opt-in,
// area-scoped, and silent by default. parse.Document is its only
// caller, logging under the "parse" area.
package sdllog

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	once    sync.Once
	enabled map[string]bool
)

// areas lazily parses SDL_DEBUG, a comma-separated list of area names
// ("parse", "tokenize", "encode", ...), or "*" to enable everything.
func areas() map[string]bool {
	once.Do(func() {
		enabled = make(map[string]bool)
		raw := os.Getenv("SDL_DEBUG")
		for _, a := range strings.Split(raw, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				enabled[a] = true
			}
		}
	})
	return enabled
}

// Enabled reports whether area is currently logged.
func Enabled(area string) bool {
	m := areas()
	return m["*"] || m[area]
}

// Logf writes a log line for area if it is enabled, formatting msg
// against args with fmt verbs. When the area is disabled the format
// call is skipped entirely, so an expensive %v of a large tag tree
// only fires under SDL_DEBUG.
func Logf(area, msg string, args ...any) {
	if !Enabled(area) {
		return
	}
	fmt.Fprintf(os.Stderr, "sdl: %s: "+msg+"\n", append([]any{area}, args...)...)
}
