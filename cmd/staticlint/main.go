// Package main implements a multichecker that runs a set of static analysis
// analyzers on Go code.
//
// This tool runs:
//   - standard analyzers from golang.org/x/tools/go/analysis/passes
//   - noosexitmain, which forbids direct calls to os.Exit in main.main
//   - unboundedhttpclient, which requires a timeout on outbound HTTP clients
//
// Usage:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"github.com/sbilibin2017/gamepeaks/cmd/staticlint/analyzers"
)

func main() {
	multichecker.Main(
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unmarshal.Analyzer,
		unusedresult.Analyzer,
		analyzers.NoOsExitMainAnalyzer,
		analyzers.UnboundedHTTPClientAnalyzer,
	)
}
