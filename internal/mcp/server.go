package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/faq"
	"github.com/ziadkadry99/support-bot/internal/intent"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Classifier answers a message received on a channel.
type Classifier interface {
	Classify(ctx context.Context, ch chatlog.Channel, message string) intent.Response
}

// Server wraps an MCP server that exposes the support classifier as tools.
type Server struct {
	classifier Classifier
	orders     *orders.Table
	catalog    *faq.Catalog
	scorer     *faq.Scorer
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(classifier Classifier, table *orders.Table, catalog *faq.Catalog) *Server {
	if table == nil {
		table = orders.NewTable(nil)
	}
	if catalog == nil {
		catalog, _ = faq.NewCatalog()
	}
	s := &Server{
		classifier: classifier,
		orders:     table,
		catalog:    catalog,
		scorer:     faq.NewScorer(catalog),
	}

	s.mcp = server.NewMCPServer(
		"supportbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(classifyMessageTool, s.handleClassifyMessage)
	s.mcp.AddTool(lookupOrderTool, s.handleLookupOrder)
	s.mcp.AddTool(searchFAQTool, s.handleSearchFAQ)
	s.mcp.AddTool(listFAQCategoriesTool, s.handleListFAQCategories)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
