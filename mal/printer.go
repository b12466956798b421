package mal

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// PrintState carries printing options down the tree.
type PrintState struct {
	// Raw emits strings without quotes or escapes.
	Raw bool
}

func NewPrintState() *PrintState {
	return &PrintState{}
}

func (ps *PrintState) readably() bool {
	return ps == nil || !ps.Raw
}

// Print renders x as canonical text.
func Print(x Sexp) string {
	return x.SexpString(nil)
}

// PrintStr renders x, quoting and escaping strings when readably is set.
func PrintStr(x Sexp, readably bool) string {
	return x.SexpString(&PrintState{Raw: !readably})
}

func (sexpNil) SexpString(ps *PrintState) string {
	return "nil"
}

func (b *SexpBool) SexpString(ps *PrintState) string {
	return strconv.FormatBool(b.Val)
}

func (f *SexpFloat) SexpString(ps *PrintState) string {
	switch {
	case math.IsInf(f.Val, 1):
		return "inf"
	case math.IsInf(f.Val, -1):
		return "-inf"
	}
	// shortest digits, never an exponent: 1, 1.5, 1000000000000000000000
	return strconv.FormatFloat(f.Val, 'f', -1, 64)
}

func (s *SexpSymbol) SexpString(ps *PrintState) string {
	return s.Name
}

func (k *SexpKeyword) SexpString(ps *PrintState) string {
	return ":" + k.Name
}

func (s *SexpStr) SexpString(ps *PrintState) string {
	if !ps.readably() {
		return s.S
	}
	return `"` + EscapeString(s.S) + `"`
}

func (l *SexpList) SexpString(ps *PrintState) string {
	return "(" + joinSexps(l.Val, ps) + ")"
}

func (v *SexpVector) SexpString(ps *PrintState) string {
	return "[" + joinSexps(v.Val, ps) + "]"
}

func (h *SexpHash) SexpString(ps *PrintState) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range h.SortedKeys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k.Sexp().SexpString(ps))
		sb.WriteByte(' ')
		sb.WriteString(h.Map[k].SexpString(ps))
	}
	sb.WriteByte('}')
	return sb.String()
}

// SortedKeys orders keywords before strings, each by text.
func (h *SexpHash) SortedKeys() []HashKey {
	keys := make([]HashKey, 0, len(h.Map))
	for k := range h.Map {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

func joinSexps(xs []Sexp, ps *PrintState) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = x.SexpString(ps)
	}
	return strings.Join(strs, " ")
}

// EscapeString escapes '"', '\', newline and tab. Everything else,
// control characters included, passes through untouched.
func EscapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
