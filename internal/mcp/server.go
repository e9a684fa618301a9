// ABOUTME: MCP server setup for the gym schedule.
// ABOUTME: Wraps the MCP server around a schedule Store and serializes access to it.
package mcp

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/gym/internal/logging"
	"github.com/harperreed/gym/internal/schedule"
)

// Server wraps the MCP server with schedule access.
type Server struct {
	mcpServer *mcp.Server
	store     *schedule.Store
	logger    *log.Logger
	now       func() time.Time

	// mu guards store, which is single-caller.
	mu sync.Mutex
}

// NewServer creates a new MCP server over the given store.
func NewServer(store *schedule.Store, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gym",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// warnIfUnsaved logs the last persistence failure, if any. Callers hold mu.
func (s *Server) warnIfUnsaved(tool string) string {
	if err := s.store.Err(); err != nil {
		s.logger.Warn("change kept in memory only", "tool", tool, "err", err)
		return " (warning: not saved: " + err.Error() + ")"
	}
	return ""
}
