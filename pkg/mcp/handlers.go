package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/uistyle/pkg/command"
	"github.com/gnana997/uistyle/pkg/executor"
	"github.com/gnana997/uistyle/pkg/mcplog"
	"github.com/gnana997/uistyle/pkg/resolve"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// --- execute_command ---

func (s *Server) handleExecuteCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sel, err := selectionArg(req.GetArguments()["selection"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := ""
	if req.GetBool("persist", true) {
		key = s.persistKey
	}

	res := s.exec.Execute(ctx, text, resolve.FromContext(sel), key)

	mcplog.Annotate(ctx, "success", res.Success)
	mcplog.Annotate(ctx, "changes", len(res.Changes))
	if res.Error != "" {
		mcplog.Annotate(ctx, "error_kind", string(res.Error))
	}

	out, err := jsonResult(res)
	if err != nil {
		return nil, err
	}
	out.IsError = !res.Success
	return out, nil
}

// selectionArg decodes the optional selection object.
func selectionArg(raw any) (*resolve.SelectionContext, error) {
	if raw == nil {
		return nil, nil
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	var sel resolve.SelectionContext
	if err := json.Unmarshal(b, &sel); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	return &sel, nil
}

// --- parse_command ---

func (s *Server) handleParseCommand(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var intent command.ParsedIntent
	if s.parser != nil {
		intent = s.parser.Parse(text)
	} else {
		intent = command.Parse(text)
	}
	return jsonResult(intent)
}

// --- list_targets ---

type targetInfo struct {
	Name string `json:"name"`
	resolve.TargetDefinition
}

func (s *Server) handleListTargets(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := strings.ToLower(req.GetString("category", ""))

	var out []targetInfo
	for _, name := range resolve.Targets() {
		def, _ := resolve.Definition(name)
		if category != "" && string(def.Category) != category {
			continue
		}
		out = append(out, targetInfo{Name: name, TargetDefinition: def})
	}
	if out == nil {
		out = []targetInfo{}
	}
	return jsonResult(out)
}

// --- get_tokens ---

type tokensResponse struct {
	Mode    string            `json:"mode"`
	Tokens  map[string]string `json:"tokens"`
	Missing []string          `json:"missing,omitempty"`
}

func (s *Server) handleGetTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()
	resp := tokensResponse{Mode: string(s.store.Mode()), Tokens: snap}

	names := req.GetStringSlice("names", nil)
	if len(names) > 0 {
		resp.Tokens = make(map[string]string, len(names))
		for _, n := range names {
			if v, ok := snap[n]; ok {
				resp.Tokens[n] = v
			} else {
				resp.Missing = append(resp.Missing, n)
			}
		}
		sort.Strings(resp.Missing)
	}
	return jsonResult(resp)
}

// --- get_help ---

func (s *Server) handleGetHelp(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(executor.HelpText), nil
}
