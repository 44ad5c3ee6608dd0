package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/sdl-org/sdl-go"
	"github.com/sdl-org/sdl-go/token"
)

// document holds the last-known buffer content for one open URI.
type document struct {
	uri     uri.URI
	content string
	version int32
}

// documentStore is a mutex-guarded map of open documents, keyed by
// URI, mirroring the teacher's diagnostics store.
type documentStore struct {
	mu   sync.Mutex
	docs map[uri.URI]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[uri.URI]*document)}
}

func (ds *documentStore) put(d *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[d.uri] = d
}

func (ds *documentStore) get(u uri.URI) (*document, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	d, ok := ds.docs[u]
	return d, ok
}

func (ds *documentStore) delete(u uri.URI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, u)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	d := &document{
		uri:     params.TextDocument.URI,
		content: params.TextDocument.Text,
		version: params.TextDocument.Version,
	}
	s.docs.put(d)
	return s.validateDocument(ctx, d)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	d, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		d = &document{uri: params.TextDocument.URI}
	}
	// Full sync only (TextDocumentSyncKindFull): the last change event
	// carries the entire new buffer.
	for _, change := range params.ContentChanges {
		d.content = change.Text
	}
	d.version = params.TextDocument.Version
	s.docs.put(d)
	return s.validateDocument(ctx, d)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.delete(params.TextDocument.URI)
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

// validateDocument parses d's content and publishes any resulting
// parse error as a single diagnostic, or clears diagnostics if it
// parses cleanly.
func (s *Server) validateDocument(ctx context.Context, d *document) error {
	diags := diagnosticsFor(d.content)
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         d.uri,
		Version:     uint32(d.version),
		Diagnostics: diags,
	})
}

func diagnosticsFor(content string) []protocol.Diagnostic {
	_, err := sdl.ParseDocument(strings.NewReader(content))
	if err == nil {
		return []protocol.Diagnostic{}
	}
	rng := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
	msg := err.Error()

	var perr *token.ParseError
	if errors.As(err, &perr) {
		line := uint32(0)
		if perr.Pos.Line > 0 {
			line = uint32(perr.Pos.Line - 1)
		}
		col := uint32(0)
		if perr.Pos.Col > 0 {
			col = uint32(perr.Pos.Col - 1)
		}
		rng = protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		}
		msg = perr.Msg
	}

	return []protocol.Diagnostic{{
		Range:    rng,
		Severity: protocol.DiagnosticSeverityError,
		Source:   serverName,
		Message:  msg,
	}}
}
