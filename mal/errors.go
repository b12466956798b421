package mal

import (
	"errors"
	"fmt"
)

// The reader's closed error taxonomy. Every failure is recoverable;
// the REPL reports it and keeps going.
var (
	ErrEmptyInput                = errors.New("empty input")
	ErrInvalidEscape             = errors.New("invalid escape")
	ErrMissingAtom               = errors.New("missing atom")
	ErrMissingHashMapValue       = errors.New("missing hash-map value")
	ErrUnbalancedCollection      = errors.New("unbalanced collection")
	ErrUnbalancedString          = errors.New("unbalanced string")
	ErrUnsupportedHashMapKeyType = errors.New("unsupported hash-map key type")
)

// ErrTooDeep is only raised when ReaderConfig.MaxDepth is set.
var ErrTooDeep = errors.New("nesting too deep")

// ReadError locates a reader failure in the source text.
// Error() is the bare message of the underlying sentinel so
// that REPL output stays "Error: unbalanced collection".
type ReadError struct {
	Err    error
	Offset int    // byte offset of the offending token, -1 at end of input
	Token  string // raw text of that token, empty at end of input
}

func (e *ReadError) Error() string {
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Where describes the position for verbose logging.
func (e *ReadError) Where() string {
	if e.Offset < 0 {
		return "at end of input"
	}
	return fmt.Sprintf("at offset %d near '%s'", e.Offset, e.Token)
}

func newReadError(err error, tok Token) *ReadError {
	if tok.typ == TokenEnd {
		return &ReadError{Err: err, Offset: -1}
	}
	return &ReadError{Err: err, Offset: tok.pos, Token: tok.str}
}
