package mal

import (
	"errors"
	"strconv"
	"strings"
)

// ReaderConfig tunes a Reader. The zero value reads without limits.
type ReaderConfig struct {
	// MaxDepth bounds container and reader-macro nesting.
	// Zero means unlimited.
	MaxDepth int

	// LineComments makes ';' end at the next newline instead of
	// discarding the rest of the text. Script files and joined
	// continuation lines need it.
	LineComments bool
}

// Reader turns source text into Sexp trees. It holds no state
// between calls, so one Reader may serve any number of reads.
type Reader struct {
	cfg ReaderConfig
}

func NewReader(cfg *ReaderConfig) *Reader {
	r := &Reader{}
	if cfg != nil {
		r.cfg = *cfg
	}
	return r
}

var defaultReader = NewReader(nil)

// Read parses the first form of text. Anything after it is ignored.
func Read(text string) (Sexp, error) {
	return defaultReader.Read(text)
}

// ReadAll parses every top-level form of text.
func ReadAll(text string) ([]Sexp, error) {
	return defaultReader.ReadAll(text)
}

// parser is the state of a single read.
type parser struct {
	cur      *Cursor
	maxDepth int
}

func (r *Reader) newParser(text string) *parser {
	toks := Tokens(text)
	if r.cfg.LineComments {
		toks = LineTokens(text)
	}
	return &parser{cur: NewCursor(toks), maxDepth: r.cfg.MaxDepth}
}

func (r *Reader) Read(text string) (Sexp, error) {
	p := r.newParser(text)
	defer p.cur.Close()

	if p.cur.PeekNextToken().typ == TokenEnd {
		return nil, ErrEmptyInput
	}
	x, err := p.ParseExpression(0)
	if err != nil {
		logReadError(text, err)
		return nil, err
	}
	if Verbose {
		VPrintf("read '%s' -> %s\n", text, Print(x))
	}
	return x, nil
}

func (r *Reader) ReadAll(text string) ([]Sexp, error) {
	p := r.newParser(text)
	defer p.cur.Close()

	if p.cur.PeekNextToken().typ == TokenEnd {
		return nil, ErrEmptyInput
	}
	var sx []Sexp
	for p.cur.PeekNextToken().typ != TokenEnd {
		x, err := p.ParseExpression(0)
		if err != nil {
			logReadError(text, err)
			return nil, err
		}
		sx = append(sx, x)
	}
	VPrintf("read %d forms from '%s'\n", len(sx), text)
	return sx, nil
}

func logReadError(text string, err error) {
	var re *ReadError
	if errors.As(err, &re) {
		VPrintf("read '%s' failed %s: %v\n", text, re.Where(), re)
	}
}

// reader macros taking a single form
var macroSymbol = map[TokenType]string{
	TokenQuote:    "quote",
	TokenBacktick: "quasiquote",
	TokenTilde:    "unquote",
	TokenTildeAt:  "splice-unquote",
	TokenAt:       "deref",
}

func (p *parser) ParseExpression(depth int) (Sexp, error) {
	tok := p.cur.PeekNextToken()

	switch tok.typ {
	case TokenLParen, TokenLSquare, TokenLCurly:
		if err := p.checkDepth(depth, tok); err != nil {
			return nil, err
		}
		p.cur.GetNextToken()
		return p.ParseContainer(depth+1, tok)

	case TokenQuote, TokenBacktick, TokenTilde, TokenTildeAt, TokenAt:
		if err := p.checkDepth(depth, tok); err != nil {
			return nil, err
		}
		p.cur.GetNextToken()
		expr, err := p.ParseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		return MakeList([]Sexp{MakeSymbol(macroSymbol[tok.typ]), expr}), nil

	case TokenCaret:
		if err := p.checkDepth(depth, tok); err != nil {
			return nil, err
		}
		// ^meta target reads as (with-meta target meta)
		p.cur.GetNextToken()
		meta, err := p.ParseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		target, err := p.ParseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		return MakeList([]Sexp{MakeSymbol("with-meta"), target, meta}), nil
	}
	return p.ParseAtom()
}

func (p *parser) checkDepth(depth int, tok Token) error {
	if p.maxDepth > 0 && depth >= p.maxDepth {
		return newReadError(ErrTooDeep, tok)
	}
	return nil
}

var closerFor = map[TokenType]TokenType{
	TokenLParen:  TokenRParen,
	TokenLSquare: TokenRSquare,
	TokenLCurly:  TokenRCurly,
}

// ParseContainer reads forms up to the token closing open, which
// has already been consumed.
func (p *parser) ParseContainer(depth int, open Token) (Sexp, error) {
	endTokenTyp := closerFor[open.typ]
	arr := make([]Sexp, 0, SliceDefaultCap)
	for {
		tok := p.cur.PeekNextToken()
		if tok.typ == TokenEnd {
			return nil, newReadError(ErrUnbalancedCollection, tok)
		}
		if tok.typ == endTokenTyp {
			p.cur.GetNextToken()
			break
		}
		expr, err := p.ParseExpression(depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, expr)
	}

	switch open.typ {
	case TokenLParen:
		return MakeList(arr), nil
	case TokenLSquare:
		return MakeVector(arr), nil
	}
	h, err := MakeHash(arr)
	if err != nil {
		return nil, newReadError(err, open)
	}
	return h, nil
}

const SliceDefaultCap = 10

func (p *parser) ParseAtom() (Sexp, error) {
	tok := p.cur.GetNextToken()
	if tok.typ == TokenEnd {
		return nil, newReadError(ErrMissingAtom, tok)
	}

	if f, ok := ParseNumber(tok.str); ok {
		return MakeFloat(f), nil
	}
	switch {
	case strings.HasPrefix(tok.str, `"`):
		s, err := DecodeString(tok.str)
		if err != nil {
			return nil, newReadError(err, tok)
		}
		return MakeStr(s), nil
	case strings.HasPrefix(tok.str, ":"):
		return MakeKeyword(tok.str[1:]), nil
	}
	// nil, true and false stay symbols here; giving them meaning
	// is left to evaluation.
	return MakeSymbol(tok.str), nil
}

// ParseNumber accepts decimal and float literals along with inf,
// infinity and nan in any case. Go-only spellings (hex floats, '_'
// digit separators) are not numbers. Literals too large for a
// float64 saturate to an infinity.
func ParseNumber(atom string) (float64, bool) {
	if atom == "" || strings.ContainsAny(atom, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(atom, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// DecodeString decodes a raw string token, quotes included.
// Unrecognized escapes yield the escaped character itself.
func DecodeString(raw string) (string, error) {
	var sb strings.Builder
	runes := []rune(raw)
	if len(runes) == 0 || runes[0] != '"' {
		return "", ErrUnbalancedString
	}
	for i := 1; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '"':
			return sb.String(), nil
		case '\\':
			i++
			if i >= len(runes) {
				return "", ErrUnbalancedString
			}
			sb.WriteRune(EscapeChar(runes[i]))
		default:
			sb.WriteRune(r)
		}
	}
	return "", ErrUnbalancedString
}

// EscapeChar maps the character after a backslash to its meaning.
func EscapeChar(char rune) rune {
	switch char {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	}
	// covers '"' and '\\' too
	return char
}
