package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uistyle/pkg/mcplog"
)

// loggingMiddleware records every tool call as a JSONL entry in the call log
// (when configured) and as a Debug slog record sharing the same request ID.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			requestID := mcplog.NewRequestID()
			ctx, ann := mcplog.WithAnnotations(ctx)

			start := mcplog.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			rb := mcplog.ResponseBytes(result)
			var errStr *string
			if err != nil {
				msg := err.Error()
				errStr = &msg
			}

			s.log.DebugContext(ctx, "tool call",
				"request_id", requestID,
				"tool", req.Params.Name,
				"duration_ms", elapsed,
				"error", err,
			)

			entry := mcplog.LogEntry{
				Ts:            start.UTC().Format(time.RFC3339),
				RequestID:     requestID,
				Tool:          req.Params.Name,
				Params:        mcplog.SanitizeParams(req.GetArguments()),
				DurationMs:    elapsed,
				ResponseBytes: rb,
				TokensEst:     rb / 4,
				Error:         errStr,
				Extra:         ann.Fields(),
			}
			_ = s.callLog.Write(entry)

			return result, err
		}
	}
}
