package mal

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEnd TokenType = iota
	TokenLParen
	TokenRParen
	TokenLSquare
	TokenRSquare
	TokenLCurly
	TokenRCurly
	TokenQuote
	TokenBacktick
	TokenTilde
	TokenTildeAt
	TokenCaret
	TokenAt
	TokenString
	TokenMisc
)

var tokenTypeName = map[TokenType]string{
	TokenEnd:      "End",
	TokenLParen:   "LParen",
	TokenRParen:   "RParen",
	TokenLSquare:  "LSquare",
	TokenRSquare:  "RSquare",
	TokenLCurly:   "LCurly",
	TokenRCurly:   "RCurly",
	TokenQuote:    "Quote",
	TokenBacktick: "Backtick",
	TokenTilde:    "Tilde",
	TokenTildeAt:  "TildeAt",
	TokenCaret:    "Caret",
	TokenAt:       "At",
	TokenString:   "String",
	TokenMisc:     "Misc",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeName[t]; ok {
		return s
	}
	return "Unknown"
}

// Token is a slice of the source text. A string token keeps its
// quotes and escapes verbatim; decoding happens in the parser.
type Token struct {
	typ TokenType
	str string
	pos int
}

var EndTk = Token{typ: TokenEnd, pos: -1}

func (t Token) Type() TokenType { return t.typ }
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	return t.str
}

var singleCharTokens = map[rune]TokenType{
	'(':  TokenLParen,
	')':  TokenRParen,
	'[':  TokenLSquare,
	']':  TokenRSquare,
	'{':  TokenLCurly,
	'}':  TokenRCurly,
	'\'': TokenQuote,
	'`':  TokenBacktick,
	'~':  TokenTilde,
	'^':  TokenCaret,
	'@':  TokenAt,
}

// a misc token ends at any of these, or at whitespace.
const miscDelimiters = ",;\"[]{}()'`"

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func endsMisc(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(miscDelimiters, r)
}

// Tokens lazily scans text. Whitespace and commas never produce a
// token, and a ';' discards the rest of the input. The sequence can
// be ranged over any number of times.
func Tokens(text string) iter.Seq[Token] {
	return scanTokens(text, false)
}

// LineTokens is Tokens for multi-line text such as script files:
// a ';' discards only the rest of its own line.
func LineTokens(text string) iter.Seq[Token] {
	return scanTokens(text, true)
}

func scanTokens(text string, lineComments bool) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		i := 0
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			start := i

			switch {
			case isSeparator(r):
				i += size
				continue

			case r == '~' && strings.HasPrefix(text[i+size:], "@"):
				i += size + 1
				if !yield(Token{typ: TokenTildeAt, str: text[start:i], pos: start}) {
					return
				}
				continue

			case r == '"':
				i = scanString(text, i+size)
				if !yield(Token{typ: TokenString, str: text[start:i], pos: start}) {
					return
				}
				continue

			case r == ';':
				if !lineComments {
					return
				}
				nl := strings.IndexByte(text[i:], '\n')
				if nl < 0 {
					return
				}
				i += nl + 1
				continue
			}

			if typ, ok := singleCharTokens[r]; ok {
				i += size
				if !yield(Token{typ: typ, str: text[start:i], pos: start}) {
					return
				}
				continue
			}

			i = scanMisc(text, i+size)
			if !yield(Token{typ: TokenMisc, str: text[start:i], pos: start}) {
				return
			}
		}
	}
}

// scanString returns the index just past the closing quote, or
// len(text) when the string is unterminated.
func scanString(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case '"':
			return i + 1
		case '\\':
			i++
			if i < len(text) {
				_, size := utf8.DecodeRuneInString(text[i:])
				i += size
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return len(text)
}

func scanMisc(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if endsMisc(r) {
			return i
		}
		i += size
	}
	return len(text)
}

// Tokenize collects Tokens(text).
func Tokenize(text string) []Token {
	var toks []Token
	for tok := range Tokens(text) {
		toks = append(toks, tok)
	}
	return toks
}

// TokenStrings is Tokenize reduced to the raw token text.
func TokenStrings(text string) []string {
	strs := []string{}
	for tok := range Tokens(text) {
		strs = append(strs, tok.str)
	}
	return strs
}

// Cursor gives the parser one token of lookahead over a lazy token
// sequence. It belongs to a single read and must be closed.
type Cursor struct {
	next   func() (Token, bool)
	stop   func()
	peeked bool
	tok    Token
}

func NewCursor(seq iter.Seq[Token]) *Cursor {
	next, stop := iter.Pull(seq)
	return &Cursor{next: next, stop: stop}
}

// PeekNextToken returns EndTk once the sequence is exhausted.
func (c *Cursor) PeekNextToken() Token {
	if !c.peeked {
		tok, ok := c.next()
		if !ok {
			tok = EndTk
		}
		c.tok = tok
		c.peeked = true
	}
	return c.tok
}

func (c *Cursor) GetNextToken() Token {
	tok := c.PeekNextToken()
	if tok.typ != TokenEnd {
		c.peeked = false
	}
	return tok
}

func (c *Cursor) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
