package analyzers

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// UnboundedHTTPClientAnalyzer reports outbound HTTP calls that can hang
// forever: the package-level helpers backed by http.DefaultClient and
// http.Client literals without a Timeout.
var UnboundedHTTPClientAnalyzer = &analysis.Analyzer{
	Name:     "unboundedhttpclient",
	Doc:      "require a timeout on every outbound HTTP client",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runUnboundedHTTPClient,
}

// defaultClientHelpers are the net/http functions that use http.DefaultClient.
var defaultClientHelpers = map[string]bool{
	"Get":      true,
	"Head":     true,
	"Post":     true,
	"PostForm": true,
}

func runUnboundedHTTPClient(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodes := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.SelectorExpr)(nil),
		(*ast.CompositeLit)(nil),
	}
	insp.Preorder(nodes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			for name := range defaultClientHelpers {
				if isFunc(pass, n, "net/http", name) {
					pass.Reportf(n.Pos(), "http.%s uses http.DefaultClient, which has no timeout", name)
					return
				}
			}

		case *ast.SelectorExpr:
			obj, ok := pass.TypesInfo.Uses[n.Sel].(*types.Var)
			if ok && obj.Pkg() != nil && obj.Pkg().Path() == "net/http" && obj.Name() == "DefaultClient" {
				pass.Reportf(n.Pos(), "http.DefaultClient has no timeout")
			}

		case *ast.CompositeLit:
			if !isHTTPClient(pass.TypesInfo.TypeOf(n)) {
				return
			}
			for _, elt := range n.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					// Positional literal: every field is set explicitly.
					return
				}
				if key, ok := kv.Key.(*ast.Ident); ok && key.Name == "Timeout" {
					return
				}
			}
			pass.Reportf(n.Pos(), "http.Client without Timeout")
		}
	})

	return nil, nil
}

func isHTTPClient(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "net/http" && obj.Name() == "Client"
}
