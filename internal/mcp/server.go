// Package mcp exposes a store file to Model Context Protocol clients. The
// tools are read-only; the file is loaded afresh on every call so positions
// always reflect its current contents.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/choplin/pm/internal/logging"
	"github.com/choplin/pm/internal/store"
)

// Server wraps the MCP server with pm-specific tools
type Server struct {
	server *mcp.Server
	path   string
	log    *slog.Logger
}

// NewServer creates a server reading the store at path.
func NewServer(path, version string, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "pm",
		Version: version,
	}, nil)

	s := &Server{
		server: mcpServer,
		path:   path,
		log:    log,
	}
	s.registerTools()
	return s
}

// Run serves over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("mcp server starting", "path", s.path)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pm_list",
		Description: "List entry names with their 1-based positions",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pm_show",
		Description: "Show one entry, addressed by name or 1-based position",
	}, s.handleShow)
}

type ListInput struct{}

type ListOutput struct {
	Entries []ListEntry `json:"entries"`
}

type ListEntry struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ShowInput struct {
	Entry        string `json:"entry" jsonschema:"entry name or 1-based position from pm_list"`
	WithPassword bool   `json:"withPassword,omitempty" jsonschema:"include the password in the result"`
}

type ShowOutput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Notes    string `json:"notes"`
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	entries, err := store.Load(s.path)
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to load store: %w", err)
	}

	out := ListOutput{Entries: make([]ListEntry, 0, entries.Len())}
	i := 1
	for name, entry := range entries.All() {
		out.Entries = append(out.Entries, ListEntry{Index: i, Name: name, Username: entry.Username})
		i++
	}
	return nil, out, nil
}

func (s *Server) handleShow(ctx context.Context, req *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
	entries, err := store.Load(s.path)
	if err != nil {
		return nil, ShowOutput{}, fmt.Errorf("failed to load store: %w", err)
	}

	name, err := entries.Resolve(input.Entry)
	if err != nil {
		return nil, ShowOutput{}, err
	}
	entry, _ := entries.Get(name)

	out := ShowOutput{
		Name:     entry.Name,
		Username: entry.Username,
		Notes:    entry.Notes,
	}
	if input.WithPassword {
		out.Password = entry.Password
		s.log.Warn("password disclosed over mcp", "name", name)
	}
	return nil, out, nil
}
