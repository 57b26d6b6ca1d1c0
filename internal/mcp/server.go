// Package mcp exposes the quest editing operations as MCP tools over
// stdio. It is the intent boundary: a client issues mutations, the server
// applies them through the editing core against the stored collection, and
// writes the result back. Deletes arriving over this boundary are treated
// as already confirmed by the client.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"questforge/internal/config"
	"questforge/internal/dialogue"
	"questforge/internal/quest"
	"questforge/internal/store"
)

type Server struct {
	db       store.Store
	corpus   *dialogue.Corpus
	catalogs *config.Catalogs
	editor   *quest.Editor
	mcp      *sdk.Server
}

// NewServer wires the tool set. corpus and catalogs may be nil; the tools
// that need them report a clean error instead.
func NewServer(db store.Store, corpus *dialogue.Corpus, catalogs *config.Catalogs, version string) *Server {
	s := &Server{
		db:       db,
		corpus:   corpus,
		catalogs: catalogs,
		editor:   quest.NewEditor(),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "questforge",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
