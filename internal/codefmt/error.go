package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error located in the source of a loaded package.
type CodeError struct {
	err      error
	pos, end token.Pos
	fset     *token.FileSet
}

func (e *CodeError) Unwrap() error  { return e.err }
func (e *CodeError) Pos() token.Pos { return e.pos }

// End is the end of the offending node. It is token.NoPos unless the error
// was located by an [Ender].
func (e *CodeError) End() token.Pos { return e.end }

// Position resolves Pos. It is invalid when the position is unknown.
func (e *CodeError) Position() token.Position {
	if e.fset == nil || !e.pos.IsValid() {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

// Error prefixes the message with the position when it is known.
func (e *CodeError) Error() string {
	if pos := e.Position(); pos.IsValid() {
		return FormatPosition(pos) + ": " + e.err.Error()
	}
	return e.err.Error()
}

// Errorf returns a [*CodeError] located at poser, which may be nil. The
// message is formatted by [Formatter.Sprintf]. It panics if an argument is an
// error.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: Errorf cannot wrap an error")
		}
	}

	e := &CodeError{err: fmt.Errorf(format, f.wrap(args)...), fset: f.Fset}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}
