// Package analyzers contains the project's custom static checks.
package analyzers

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// NoOsExitMainAnalyzer reports os.Exit calls made directly in main.main.
// Exiting there skips deferred cleanup such as the final peak snapshot.
var NoOsExitMainAnalyzer = &analysis.Analyzer{
	Name:     "noosexitmain",
	Doc:      "disallow direct calls to os.Exit in main.main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoOsExit,
}

func runNoOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			// Closures may run after main returns.
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if isFunc(pass, call, "os", "Exit") {
				pass.Reportf(call.Pos(), "direct call to os.Exit in main.main is forbidden")
			}
			return true
		})
	})

	return nil, nil
}

// isFunc reports whether call invokes the package-level function pkg.name.
// Methods with the same name, such as (*http.Client).Get, do not match.
func isFunc(pass *analysis.Pass, call *ast.CallExpr, pkg, name string) bool {
	fn := typeutil.StaticCallee(pass.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil {
		return false
	}
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return false
	}
	return fn.Pkg().Path() == pkg && fn.Name() == name
}
