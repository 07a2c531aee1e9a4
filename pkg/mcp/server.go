// Package mcp exposes the style command interpreter to agents over the Model
// Context Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/executor"
	"github.com/gnana997/uistyle/pkg/mcplog"
	"github.com/gnana997/uistyle/pkg/tokens"
)

const serverVersion = "0.1.0-dev"

// Options configures a Server.
type Options struct {
	// Parser backs parse_command; nil uses command.Parse.
	Parser *command.Parser

	// PersistKey is the theme key execute_command persists to when the call
	// does not opt out. Empty disables persistence.
	PersistKey string

	// CallLog, when non-nil, receives one JSONL entry per tool call.
	CallLog *mcplog.Logger

	Logger *slog.Logger
}

// Server implements the MCP server for uistyle, exposing command execution,
// parsing and token inspection tools.
type Server struct {
	mcpServer  *server.MCPServer
	exec       *executor.Executor
	store      *tokens.MemoryStore
	parser     *command.Parser
	persistKey string
	callLog    *mcplog.Logger
	log        *slog.Logger
}

// NewServer creates a new MCP server around exec and the store it mutates.
func NewServer(exec *executor.Executor, store *tokens.MemoryStore, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		exec:       exec,
		store:      store,
		parser:     opts.Parser,
		persistKey: opts.PersistKey,
		callLog:    opts.CallLog,
		log:        log,
	}

	serverOpts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	}

	s.mcpServer = server.NewMCPServer("uistyle", serverVersion, serverOpts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: executeCommandTool(), Handler: s.handleExecuteCommand},
		server.ServerTool{Tool: parseCommandTool(), Handler: s.handleParseCommand},
		server.ServerTool{Tool: listTargetsTool(), Handler: s.handleListTargets},
		server.ServerTool{Tool: getTokensTool(), Handler: s.handleGetTokens},
		server.ServerTool{Tool: getHelpTool(), Handler: s.handleGetHelp},
	)

	return s
}

// MCPServer returns the underlying mcp-go server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
