package mal

import (
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test001TokenizerSplitsSpecialCharacters(t *testing.T) {

	cv.Convey(`Given the single character tokens, each should come out on its own, with or without whitespace between them`, t, func() {
		expected := []string{"[", "]", "{", "}", "(", ")", "'", "`", "~", "^", "@"}
		cv.So(TokenStrings("[]{}()'`~^@"), cv.ShouldResemble, expected)
		cv.So(TokenStrings("[ ] { } ( ) ' ` ~ ^ @"), cv.ShouldResemble, expected)
		cv.So(TokenStrings("   [   ]   {   }   (     )       ' `       ~ ^     @   "), cv.ShouldResemble, expected)
	})

	cv.Convey(`Given ~@, the two characters make one token only when adjacent`, t, func() {
		cv.So(TokenStrings("~@"), cv.ShouldResemble, []string{"~@"})
		cv.So(TokenStrings("~ @"), cv.ShouldResemble, []string{"~", "@"})
		cv.So(TokenStrings("  ~      @   "), cv.ShouldResemble, []string{"~", "@"})
		cv.So(TokenStrings("~@~"), cv.ShouldResemble, []string{"~@", "~"})
	})
}

func Test002TokenizerKeepsStringsVerbatim(t *testing.T) {

	cv.Convey(`Given string literals, the raw token keeps the quotes and escapes for the parser to decode`, t, func() {
		cv.So(TokenStrings(`""`), cv.ShouldResemble, []string{`""`})
		cv.So(TokenStrings(` "" "" `), cv.ShouldResemble, []string{`""`, `""`})
		cv.So(TokenStrings(` "abc" "123" "($)" `), cv.ShouldResemble, []string{`"abc"`, `"123"`, `"($)"`})
		cv.So(TokenStrings(` "'''" `), cv.ShouldResemble, []string{`"'''"`})
		cv.So(TokenStrings(` "\"" "\"\"" "\"\"\"" `), cv.ShouldResemble, []string{`"\""`, `"\"\""`, `"\"\"\""`})
		cv.So(TokenStrings(` "\"" "\n\\" "\\\n\"" `), cv.ShouldResemble, []string{`"\""`, `"\n\\"`, `"\\\n\""`})
		cv.So(TokenStrings(`"a b;c"d`), cv.ShouldResemble, []string{`"a b;c"`, `d`})
	})

	cv.Convey(`Given an unterminated string, the token runs to the end of input`, t, func() {
		cv.So(TokenStrings(`(x "abc`), cv.ShouldResemble, []string{"(", "x", `"abc`})
		cv.So(TokenStrings(`"abc\"`), cv.ShouldResemble, []string{`"abc\"`})
		cv.So(TokenStrings(`"abc\`), cv.ShouldResemble, []string{`"abc\`})
	})
}

func Test003TokenizerDropsCommentsAndSeparators(t *testing.T) {

	cv.Convey(`Given a ';', the rest of the input should be discarded`, t, func() {
		cv.So(TokenStrings(" ; abc 123"), cv.ShouldResemble, []string{})
		cv.So(TokenStrings(` ; ;;;   "" '   !@$ `), cv.ShouldResemble, []string{})
		cv.So(TokenStrings("abc;comment\n(def)"), cv.ShouldResemble, []string{"abc"})
		cv.So(TokenStrings(""), cv.ShouldResemble, []string{})
		cv.So(TokenStrings(" \t\n ,, "), cv.ShouldResemble, []string{})
	})

	cv.Convey(`Given commas, they should act exactly like whitespace`, t, func() {
		cv.So(TokenStrings("nil,,,"), cv.ShouldResemble, TokenStrings("nil"))
		cv.So(TokenStrings(",,true,,false,,"), cv.ShouldResemble, []string{"true", "false"})
		cv.So(TokenStrings("[1,2,3]"), cv.ShouldResemble, []string{"[", "1", "2", "3", "]"})
	})
}

func Test004TokenizerMiscTokens(t *testing.T) {

	cv.Convey(`Given bare words and numbers, misc tokens should extend to the next delimiter`, t, func() {
		cv.So(TokenStrings("nil"), cv.ShouldResemble, []string{"nil"})
		cv.So(TokenStrings("true false"), cv.ShouldResemble, []string{"true", "false"})
		cv.So(TokenStrings("ident ifier"), cv.ShouldResemble, []string{"ident", "ifier"})
		cv.So(TokenStrings("123 -543.21"), cv.ShouldResemble, []string{"123", "-543.21"})
		cv.So(TokenStrings("   true   nil false  123 "), cv.ShouldResemble, []string{"true", "nil", "false", "123"})
		cv.So(TokenStrings(" truenil false123   "), cv.ShouldResemble, []string{"truenil", "false123"})
		cv.So(TokenStrings(":kw(sym)"), cv.ShouldResemble, []string{":kw", "(", "sym", ")"})
		cv.So(TokenStrings(`a'b"c"`), cv.ShouldResemble, []string{"a", "'", "b", `"c"`})
	})

	cv.Convey(`Given ~, ^ and @ inside a word, they do not end the misc token`, t, func() {
		cv.So(TokenStrings("a@b c~d e^f"), cv.ShouldResemble, []string{"a@b", "c~d", "e^f"})
	})

	cv.Convey(`Given non-ASCII text, tokens should split on runes, not bytes`, t, func() {
		cv.So(TokenStrings("(λ ünïcode x)"), cv.ShouldResemble, []string{"(", "λ", "ünïcode", "x", ")"})
	})
}

func Test005TokensCarryTypeAndOffset(t *testing.T) {

	cv.Convey(`Given a token stream, each token should record its type and byte offset`, t, func() {
		toks := Tokenize(`( ab "s" ~@x)`)
		cv.So(len(toks), cv.ShouldEqual, 6)

		cv.So(toks[0].Type(), cv.ShouldEqual, TokenLParen)
		cv.So(toks[0].Pos(), cv.ShouldEqual, 0)
		cv.So(toks[1].Type(), cv.ShouldEqual, TokenMisc)
		cv.So(toks[1].Pos(), cv.ShouldEqual, 2)
		cv.So(toks[2].Type(), cv.ShouldEqual, TokenString)
		cv.So(toks[2].Pos(), cv.ShouldEqual, 5)
		cv.So(toks[3].Type(), cv.ShouldEqual, TokenTildeAt)
		cv.So(toks[3].Pos(), cv.ShouldEqual, 9)
		cv.So(toks[4].String(), cv.ShouldEqual, "x")
		cv.So(toks[5].Type(), cv.ShouldEqual, TokenRParen)
		cv.So(toks[5].Type().String(), cv.ShouldEqual, "RParen")
	})
}

func Test006TokenSequenceIsLazyAndRestartable(t *testing.T) {

	cv.Convey(`Given a token sequence, ranging over it twice yields the same tokens, and stopping early is allowed`, t, func() {
		seq := Tokens("(a b c)")
		var first, second []string
		for tok := range seq {
			first = append(first, tok.String())
		}
		for tok := range seq {
			second = append(second, tok.String())
		}
		cv.So(first, cv.ShouldResemble, second)

		n := 0
		for range seq {
			n++
			if n == 2 {
				break
			}
		}
		cv.So(n, cv.ShouldEqual, 2)
	})

	cv.Convey(`Given a cursor, Peek does not consume, Get does, and the end is sticky`, t, func() {
		cur := NewCursor(Tokens("a b"))
		defer cur.Close()

		cv.So(cur.PeekNextToken().String(), cv.ShouldEqual, "a")
		cv.So(cur.PeekNextToken().String(), cv.ShouldEqual, "a")
		cv.So(cur.GetNextToken().String(), cv.ShouldEqual, "a")
		cv.So(cur.GetNextToken().String(), cv.ShouldEqual, "b")
		cv.So(cur.GetNextToken().Type(), cv.ShouldEqual, TokenEnd)
		cv.So(cur.PeekNextToken().Type(), cv.ShouldEqual, TokenEnd)
	})
}

func Test007LineTokensEndCommentsAtNewline(t *testing.T) {

	cv.Convey(`Given multi-line text, LineTokens should drop a comment only up to the end of its line`, t, func() {
		cv.So(TokenStrings("abc;comment\n(def)"), cv.ShouldResemble, []string{"abc"})
		cv.So(lineTokenStrings("abc;comment\n(def)"), cv.ShouldResemble, []string{"abc", "(", "def", ")"})
		cv.So(lineTokenStrings("; header\n(1 2)\n[3] ; tail"), cv.ShouldResemble, []string{"(", "1", "2", ")", "[", "3", "]"})
		cv.So(lineTokenStrings(";;;\n;;;\n"), cv.ShouldResemble, []string{})
	})

	cv.Convey(`Given a ';' inside a string, LineTokens keeps it as text`, t, func() {
		cv.So(lineTokenStrings("\"a;b\"\nc"), cv.ShouldResemble, []string{`"a;b"`, "c"})
	})

	cv.Convey(`Given a comment, offsets after it still count from the start of the text`, t, func() {
		var toks []Token
		for tok := range LineTokens(";c\nx") {
			toks = append(toks, tok)
		}
		cv.So(len(toks), cv.ShouldEqual, 1)
		cv.So(toks[0].Pos(), cv.ShouldEqual, 3)
	})
}

func lineTokenStrings(text string) []string {
	strs := []string{}
	for tok := range LineTokens(text) {
		strs = append(strs, tok.String())
	}
	return strs
}
