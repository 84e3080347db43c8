package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
)

// wrap returns a copy of args where the arguments the extra verbs can spell
// are replaced by [codeArg]s.
func (f Formatter) wrap(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case token.Pos, token.Position, ast.Expr, types.Object, types.Type,
			Poser, Exprer, Objecter, Typer:
			wrapped[i] = codeArg{arg, f}
		default:
			wrapped[i] = arg
		}
	}
	return wrapped
}

type codeArg struct {
	x any
	f Formatter
}

// Format implements [fmt.Formatter].
func (a codeArg) Format(s fmt.State, verb rune) {
	var (
		out string
		ok  bool
	)
	switch verb {
	case 'o':
		var obj types.Object
		if obj, ok = a.object(); ok {
			out = a.f.Obj(obj)
		}
	case 't':
		var typ types.Type
		if typ, ok = a.typ(); ok {
			out = a.f.Type(typ)
		}
	case 'c':
		var expr ast.Expr
		if expr, ok = a.expr(); ok {
			out = a.f.Expr(expr)
		}
	case 'b':
		var pos token.Position
		if pos, ok = a.position(); ok {
			out = FormatPosition(pos)
		}
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
		return
	}

	if !ok {
		fmt.Fprintf(s, "%%!%c(%T)", verb, a.x)
		return
	}
	_, _ = io.WriteString(s, out)
}

func (a codeArg) object() (types.Object, bool) {
	switch x := a.x.(type) {
	case types.Object:
		return x, true
	case Objecter:
		return x.Object(), true
	}
	if typ, ok := a.typ(); ok {
		if named, ok := types.Unalias(typ).(*types.Named); ok {
			return named.Obj(), true
		}
	}
	return nil, false
}

func (a codeArg) typ() (types.Type, bool) {
	switch x := a.x.(type) {
	case types.Type:
		return x, true
	case Typer:
		return x.Type(), true
	case types.Object:
		return x.Type(), true
	case Objecter:
		return x.Object().Type(), true
	}
	if expr, ok := a.expr(); ok && a.f.TypesInfo != nil {
		if typ := a.f.TypesInfo.TypeOf(expr); typ != nil {
			return typ, true
		}
	}
	return nil, false
}

func (a codeArg) expr() (ast.Expr, bool) {
	switch x := a.x.(type) {
	case ast.Expr:
		return x, true
	case Exprer:
		return x.Expr(), true
	}
	return nil, false
}

func (a codeArg) position() (token.Position, bool) {
	var pos token.Pos
	switch x := a.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		pos = x
	case Poser:
		pos = x.Pos()
	case types.Object:
		pos = x.Pos()
	default:
		return token.Position{}, false
	}
	if a.f.Fset == nil {
		return token.Position{}, false
	}
	return a.f.Fset.Position(pos), true
}
