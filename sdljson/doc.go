// Package sdljson exports a tag tree to JSON and applies RFC 6902
// JSON patches to that export. It does not reconstruct a *tag.Tag from
// JSON; ApplyPatch's result is JSON, for callers that only need the
// patched document, not a live tag tree.
package sdljson
