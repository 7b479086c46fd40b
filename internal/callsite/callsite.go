// Package callsite recovers the source text of a check from its call site.
//
// Checks are plain function calls, so the expression being checked is not
// available at run time. Instead the caller's file is parsed (once) and the
// arguments of the call found at the reported line are rendered back to
// source.
package callsite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"runtime"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
)

type Location struct {
	File string
	Line int
}

// Caller returns the location of the caller, skip frames above the function
// calling Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???", Line: 0}
	}

	return Location{File: file, Line: line}
}

type parsedFile struct {
	fset    *token.FileSet
	inspect *inspector.Inspector
	err     error
}

var files sync.Map

func parse(filename string) *parsedFile {
	if cached, ok := files.Load(filename); ok {
		return cached.(*parsedFile)
	}

	pf := &parsedFile{fset: token.NewFileSet()}
	f, err := parser.ParseFile(pf.fset, filename, nil, parser.SkipObjectResolution)
	if err != nil {
		pf.err = err
	} else {
		pf.inspect = inspector.New([]*ast.File{f})
	}

	actual, _ := files.LoadOrStore(filename, pf)
	return actual.(*parsedFile)
}

// Describe renders the expression checked by the call to the function named fn
// at loc. The first argument of the call is the test handle and is not part
// of the expression. When the call cannot be found, placeholders are used.
func Describe(loc Location, fn string, op Op) string {
	call := findCall(loc, fn)
	if call == nil || len(call.Args) != op.arity()+1 {
		return op.Format()
	}

	operands := make([]string, 0, op.arity())
	for _, arg := range call.Args[1:] {
		operands = append(operands, render(arg))
	}

	return op.Format(operands...)
}

// Returns the innermost call to fn whose source span contains loc.Line. Frames
// carry no column, so when several sibling calls to fn share the line none of
// them is returned.
func findCall(loc Location, fn string) *ast.CallExpr {
	pf := parse(loc.File)
	if pf.err != nil {
		return nil
	}

	var candidates []*ast.CallExpr
	pf.inspect.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if callName(call.Fun) != fn {
			return
		}

		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		if loc.Line < start || loc.Line > end {
			return
		}

		candidates = append(candidates, call)
	})

	// Preorder visits enclosing calls first; drop every candidate that
	// contains a later one.
	var innermost []*ast.CallExpr
	for i, call := range candidates {
		enclosing := false
		for _, other := range candidates[i+1:] {
			if call.Pos() <= other.Pos() && other.End() <= call.End() {
				enclosing = true
				break
			}
		}
		if !enclosing {
			innermost = append(innermost, call)
		}
	}

	if len(innermost) != 1 {
		return nil
	}

	return innermost[0]
}

func callName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return callName(f.X)
	case *ast.IndexListExpr:
		return callName(f.X)
	case *ast.ParenExpr:
		return callName(f.X)
	default:
		return ""
	}
}

func render(expr ast.Expr) string {
	// `func() { helper(t) }` reads better as `helper(t)`.
	if lit, ok := expr.(*ast.FuncLit); ok && len(lit.Body.List) == 1 {
		if stmt, ok := lit.Body.List[0].(*ast.ExprStmt); ok {
			return types.ExprString(stmt.X)
		}
	}

	return types.ExprString(expr)
}
