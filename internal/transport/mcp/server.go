// Package mcp exposes the dispatch operations as MCP tools so operator
// assistants can preview recommendations, run batches, and assign tasks
// over the same contracts as the HTTP API.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	"github.com/nvoss/staff-mesh/internal/service/orchestrator"
)

type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(orch *orchestrator.Service, rec portrecommender.Recommender) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"staff-mesh",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, orch, rec)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
