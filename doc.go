// Package sdl implements the Simple Declarative Language core: a
// tag-oriented configuration format with a closed set of typed
// literals, namespaced names, and namespaced attributes. It exposes
// the parse and serialize entry points; the tag tree's public query
// helpers, file/URL adapters, and any schema layer are left to
// surrounding code (see the tag, sdljson, and sdlquery packages for
// what this module does provide beyond the bare core).
package sdl
