package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.addListFrameworksTool()
	s.addAnalyzeGapsTool()
	s.addComplianceMatrixTool()
	s.addFindSimilarControlsTool()
}

func (s *Server) addListFrameworksTool() {
	s.mcp.AddTool(&mcp.Tool{
		Name:  "list_frameworks",
		Title: "List Compliance Frameworks",
		Description: `List every compliance framework registered in the engine with its version, domain count, and control count.

USE THIS TOOL WHEN:
- Starting a compliance analysis session and you need to know what frameworks are loaded
- You need the exact framework IDs to pass to other tools ("soc2", "iso27001", "nist-csf")

Takes no arguments.`,
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:          "List Compliance Frameworks",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, s.handleListFrameworks)
}

func (s *Server) handleListFrameworks(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type frameworkInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description,omitempty"`
		Domains     int    `json:"domains"`
		Controls    int    `json:"controls"`
	}

	var out []frameworkInfo
	for _, fw := range s.engine.Frameworks() {
		out = append(out, frameworkInfo{
			ID:          fw.ID,
			Name:        fw.Name,
			Version:     fw.Version,
			Description: fw.Description,
			Domains:     fw.DomainCount(),
			Controls:    fw.ControlCount(),
		})
	}
	return jsonResult(out)
}

type gapArgs struct {
	SourceFramework string `json:"source_framework"`
	TargetFramework string `json:"target_framework"`
}

func (s *Server) addAnalyzeGapsTool() {
	s.mcp.AddTool(&mcp.Tool{
		Name:  "analyze_gaps",
		Title: "Analyze Coverage Gaps",
		Description: `Compare two compliance frameworks and report coverage percentage plus the controls on each side that have no mapping to the other.

USE THIS TOOL WHEN:
- Assessing how much of framework A is already satisfied by framework B
- Producing a remediation list of unmapped controls

Returns coverage percentage, mapping count, and gap lists grouped by risk level.`,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"source_framework": map[string]any{
					"type":        "string",
					"description": "Framework ID whose controls are being checked for coverage (e.g. \"soc2\")",
				},
				"target_framework": map[string]any{
					"type":        "string",
					"description": "Framework ID being compared against (e.g. \"iso27001\")",
				},
			},
			"required": []string{"source_framework", "target_framework"},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:          "Analyze Coverage Gaps",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, s.handleAnalyzeGaps)
}

func (s *Server) handleAnalyzeGaps(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args gapArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	if args.SourceFramework == "" || args.TargetFramework == "" {
		return errorResult("both source_framework and target_framework are required"), nil
	}

	analysis, err := s.engine.AnalyzeGaps(args.SourceFramework, args.TargetFramework)
	if err != nil {
		return errorResult(fmt.Sprintf("gap analysis failed: %v", err)), nil
	}
	return jsonResult(analysis)
}

type matrixArgs struct {
	Frameworks []string `json:"frameworks"`
}

func (s *Server) addComplianceMatrixTool() {
	s.mcp.AddTool(&mcp.Tool{
		Name:  "compliance_matrix",
		Title: "Compliance Matrix",
		Description: `Build the all-pairs coverage matrix across frameworks. Each cell holds the coverage percentage from the row framework to the column framework, the mapping count, and the gap count.

USE THIS TOOL WHEN:
- You want a single overview of cross-framework coverage
- Deciding which framework pair needs mapping work first

Pass "frameworks" to restrict the matrix; omit it to include every registered framework.`,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"frameworks": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Optional framework IDs to include; defaults to all registered frameworks",
				},
			},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:          "Compliance Matrix",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, s.handleComplianceMatrix)
}

func (s *Server) handleComplianceMatrix(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args matrixArgs
	if err := parseArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	matrix, err := s.engine.ComplianceMatrix(args.Frameworks...)
	if err != nil {
		return errorResult(fmt.Sprintf("matrix build failed: %v", err)), nil
	}
	return jsonResult(matrix)
}

type similarArgs struct {
	FrameworkID string  `json:"framework_id"`
	ControlID   string  `json:"control_id"`
	Threshold   float64 `json:"threshold"`
}

func (s *Server) addFindSimilarControlsTool() {
	s.mcp.AddTool(&mcp.Tool{
		Name:  "find_similar_controls",
		Title: "Find Similar Controls",
		Description: `Suggest mapping candidates for a control by text similarity against every control in the other registered frameworks.

USE THIS TOOL WHEN:
- A control has no mappings yet and you want candidates to review
- Validating whether an existing mapping set is complete

Results are sorted by similarity, highest first. Candidates above 0.9 are suggested as "equivalent", the rest as "related". Threshold defaults to 0.3 when omitted.`,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"framework_id": map[string]any{
					"type":        "string",
					"description": "Framework the source control belongs to",
				},
				"control_id": map[string]any{
					"type":        "string",
					"description": "Control to find candidates for (e.g. \"CC6.1\")",
				},
				"threshold": map[string]any{
					"type":        "number",
					"description": "Minimum similarity score between 0 and 1 (default 0.3)",
				},
			},
			"required": []string{"framework_id", "control_id"},
		},
		Annotations: &mcp.ToolAnnotations{
			Title:          "Find Similar Controls",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, s.handleFindSimilarControls)
}

func (s *Server) handleFindSimilarControls(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := similarArgs{Threshold: 0.3}
	if err := parseArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	if args.FrameworkID == "" || args.ControlID == "" {
		return errorResult("both framework_id and control_id are required"), nil
	}
	if args.Threshold < 0 || args.Threshold > 1 {
		return errorResult(fmt.Sprintf("threshold must be between 0 and 1, got %v", args.Threshold)), nil
	}

	matches := s.engine.SimilarControls(args.ControlID, args.FrameworkID, args.Threshold)
	return jsonResult(matches)
}
