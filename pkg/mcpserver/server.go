// Package mcpserver exposes the mapping engine over the Model
// Context Protocol so AI assistants can query framework coverage
// directly. All tools are read-only computations over the engine's
// in-memory state; nothing mutates, nothing touches the network
// beyond the MCP transport itself.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/complymap/complymap/pkg/engine"
)

// Version is reported in the MCP handshake.
const Version = "1.0.0"

// Server wraps the MCP server with complymap functionality.
type Server struct {
	mcp    *mcp.Server
	engine *engine.Engine
}

// MCPServer returns the underlying MCP server for direct access (e.g., testing).
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// New creates an MCP server exposing the given engine's analysis
// operations as tools.
func New(e *engine.Engine) *Server {
	s := &Server{engine: e}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    "complymap",
			Title:   "Compliance Framework Mapping Server",
			Version: Version,
		},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)

	s.registerTools()
	return s
}

// RunStdio runs the MCP server over stdio transport, the mode used by
// IDE and assistant integrations.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

const serverInstructions = `complymap maps controls between security compliance frameworks (SOC 2, ISO 27001, NIST CSF) and computes coverage and gap statistics.

Typical workflow: list_frameworks to see what is loaded, analyze_gaps for a directional comparison between two frameworks, compliance_matrix for the all-pairs overview, find_similar_controls to suggest new mappings for an unmapped control.

All tools are read-only and instant; none send network traffic.`

// textResult creates a CallToolResult with a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return textResult(string(data)), nil
}

// errorResult creates an IsError CallToolResult so the LLM can see the error
// and self-correct rather than raising a protocol-level exception.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

// boolPtr returns a pointer to b. Used for optional bool fields in the SDK.
func boolPtr(b bool) *bool { return &b }

// parseArgs unmarshals the raw JSON arguments from a tool call into dst.
func parseArgs(req *mcp.CallToolRequest, dst any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, dst); err != nil {
		return fmt.Errorf("parsing tool arguments: %w", err)
	}
	return nil
}
