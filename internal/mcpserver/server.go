// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kraklabs/sgsearch/internal/contract"
	"github.com/kraklabs/sgsearch/pkg/tools"
)

const (
	// ServerName is the implementation name announced to clients.
	ServerName = "sourcegraph"
	// DefaultVersion is announced when no build version is set.
	DefaultVersion = "0.1.3"
)

// Server is an MCP server backed by a tools.Handler.
type Server struct {
	server  *mcp.Server
	handler *tools.Handler
	logger  *slog.Logger
}

// New creates a Server with the search tool registered.
func New(handler *tools.Handler, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if version == "" || version == "dev" {
		version = DefaultVersion
	}

	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
		handler: handler,
		logger:  logger,
	}
	s.server.AddTool(SearchTool(), s.handleSearch)
	return s
}

// Run serves MCP over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp.server.start", "transport", "stdio", "tool", tools.ToolSearch)
	err := s.server.Run(ctx, &mcp.StdioTransport{})
	s.logger.Info("mcp.server.stop", "err", err)
	return err
}

// Connect serves a single session over t.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// SearchTool describes the search tool and its input schema.
func SearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        tools.ToolSearch,
		Description: tools.SearchDescription,
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				tools.ArgQuery: {
					Type:        "string",
					Description: tools.QueryDescription,
				},
				tools.ArgPatternType: {
					Type:        "string",
					Enum:        []any{"keyword", "regexp"},
					Default:     json.RawMessage(`"keyword"`),
					Description: tools.PatternTypeDescription,
				},
				tools.ArgCount: {
					Type:        "integer",
					Default:     json.RawMessage(fmt.Sprint(contract.DefaultCount)),
					Minimum:     bound(contract.MinCount),
					Maximum:     bound(contract.MaxCount),
					Description: tools.CountDescription,
				},
				tools.ArgTimeout: {
					Type:        "integer",
					Default:     json.RawMessage(fmt.Sprint(contract.DefaultTimeout)),
					Minimum:     bound(contract.MinTimeout),
					Maximum:     bound(contract.MaxTimeout),
					Description: tools.TimeoutDescription,
				},
			},
			Required: []string{tools.ArgQuery},
		},
	}
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	name := req.Params.Name
	if name == "" {
		name = tools.ToolSearch
	}

	args, err := decodeArguments(req.Params.Arguments)
	if err != nil {
		observeCall(name, outcomeInvalid, time.Since(start))
		return nil, err
	}

	result, err := s.handler.Call(ctx, name, args)
	if err != nil {
		s.logger.Warn("mcp.tool.rejected", "tool", name, "err", err)
		observeCall(name, outcomeInvalid, time.Since(start))
		return nil, err
	}

	outcome := outcomeOK
	if result.IsError {
		outcome = outcomeError
	}
	observeCall(name, outcome, time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
		IsError: result.IsError,
	}, nil
}

// decodeArguments turns the raw JSON arguments into a map. Absent or null
// arguments decode to an empty map so validation can name the missing field.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, &tools.ValidationError{Message: fmt.Sprintf("arguments must be a JSON object: %v", err)}
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func bound(v int) *float64 {
	f := float64(v)
	return &f
}
