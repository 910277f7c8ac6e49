package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"
)

// TestFormatValidationContract enforces a CLI flag contract via AST
// analysis: every run function that merges a -format flag into
// cfg.Format must call cfg.Validate before acting on it, so a typo
// like "-format jsn" errors instead of silently falling through to
// text output.
func TestFormatValidationContract(t *testing.T) {
	t.Parallel()

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "cmd_") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		// cmd_export.go narrows formats itself with an explicit
		// switch and a fatal default.
		if name == "cmd_export.go" {
			continue
		}

		f, parseErr := parser.ParseFile(fset, name, nil, 0)
		if parseErr != nil {
			t.Fatalf("parse %s: %v", name, parseErr)
		}

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "run") {
				continue
			}
			if !assignsConfigFormat(fn) {
				continue
			}
			if !callsConfigValidate(fn) {
				t.Errorf("%s: %s sets cfg.Format but never calls cfg.Validate", name, fn.Name.Name)
			}
		}
	}
}

func assignsConfigFormat(fn *ast.FuncDecl) bool {
	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		assign, ok := n.(*ast.AssignStmt)
		if !ok {
			return true
		}
		for _, lhs := range assign.Lhs {
			if isSelector(lhs, "cfg", "Format") {
				found = true
			}
		}
		return true
	})
	return found
}

func callsConfigValidate(fn *ast.FuncDecl) bool {
	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		if isSelector(call.Fun, "cfg", "Validate") {
			found = true
		}
		return true
	})
	return found
}

func isSelector(expr ast.Expr, ident, field string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != field {
		return false
	}
	x, ok := sel.X.(*ast.Ident)
	return ok && x.Name == ident
}
