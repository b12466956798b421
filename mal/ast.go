package mal

import (
	"math"
)

// Sexp is a node of the abstract syntax tree. The set of
// implementations is closed: SexpNil, *SexpBool, *SexpFloat,
// *SexpSymbol, *SexpKeyword, *SexpStr, *SexpList, *SexpVector
// and *SexpHash.
type Sexp interface {
	SexpString(ps *PrintState) string
	Type() SexpType
}

type SexpType int

const (
	TypeNil SexpType = iota
	TypeBool
	TypeNumber
	TypeSymbol
	TypeKeyword
	TypeString
	TypeList
	TypeVector
	TypeHashMap
)

var sexpTypeName = []string{"nil", "bool", "number", "symbol", "keyword", "string", "list", "vector", "hashmap"}

func (t SexpType) String() string {
	if t < 0 || int(t) >= len(sexpTypeName) {
		return "unknown"
	}
	return sexpTypeName[t]
}

type sexpNil struct{}

// SexpNil is the only Nil value.
var SexpNil Sexp = sexpNil{}

func (sexpNil) Type() SexpType { return TypeNil }

type SexpBool struct {
	Val bool
}

func (*SexpBool) Type() SexpType { return TypeBool }

type SexpFloat struct {
	Val float64
}

func (*SexpFloat) Type() SexpType { return TypeNumber }

type SexpSymbol struct {
	Name string
}

func (*SexpSymbol) Type() SexpType { return TypeSymbol }

// SexpKeyword holds the name without its leading ':'.
type SexpKeyword struct {
	Name string
}

func (*SexpKeyword) Type() SexpType { return TypeKeyword }

// SexpStr holds decoded text.
type SexpStr struct {
	S string
}

func (*SexpStr) Type() SexpType { return TypeString }

type SexpList struct {
	Val []Sexp
}

func (*SexpList) Type() SexpType { return TypeList }

type SexpVector struct {
	Val []Sexp
}

func (*SexpVector) Type() SexpType { return TypeVector }

type SexpHash struct {
	Map map[HashKey]Sexp
}

func (*SexpHash) Type() SexpType { return TypeHashMap }

func MakeBool(b bool) *SexpBool { return &SexpBool{Val: b} }
func MakeFloat(f float64) *SexpFloat { return &SexpFloat{Val: f} }
func MakeSymbol(name string) *SexpSymbol { return &SexpSymbol{Name: name} }
func MakeKeyword(name string) *SexpKeyword { return &SexpKeyword{Name: name} }
func MakeStr(s string) *SexpStr { return &SexpStr{S: s} }
func MakeList(val []Sexp) *SexpList { return &SexpList{Val: val} }
func MakeVector(val []Sexp) *SexpVector { return &SexpVector{Val: val} }

// MakeHash pairs up a flat key/value sequence in order. Each key
// is checked before its value is looked for, so a bad key earlier
// in the sequence wins over a missing value at the end. A repeated
// key keeps the last value.
func MakeHash(flat []Sexp) (*SexpHash, error) {
	h := &SexpHash{Map: make(map[HashKey]Sexp, len(flat)/2)}
	for i := 0; i < len(flat); i += 2 {
		key, err := ToHashKey(flat[i])
		if err != nil {
			return nil, err
		}
		if i+1 >= len(flat) {
			return nil, ErrMissingHashMapValue
		}
		h.Map[key] = flat[i+1]
	}
	return h, nil
}

type HashKeyKind int

const (
	HashKeyKeyword HashKeyKind = iota
	HashKeyString
)

// HashKey is the restricted key type of a hash-map: either a
// keyword or a string. It is comparable, so it indexes a Go map.
type HashKey struct {
	Kind HashKeyKind
	Text string
}

func KeywordKey(name string) HashKey { return HashKey{Kind: HashKeyKeyword, Text: name} }
func StringKey(s string) HashKey { return HashKey{Kind: HashKeyString, Text: s} }

// ToHashKey narrows x to a HashKey.
func ToHashKey(x Sexp) (HashKey, error) {
	switch e := x.(type) {
	case *SexpKeyword:
		return KeywordKey(e.Name), nil
	case *SexpStr:
		return StringKey(e.S), nil
	}
	return HashKey{}, ErrUnsupportedHashMapKeyType
}

// Sexp widens the key back into a tree node.
func (k HashKey) Sexp() Sexp {
	if k.Kind == HashKeyKeyword {
		return MakeKeyword(k.Text)
	}
	return MakeStr(k.Text)
}

func (k HashKey) less(o HashKey) bool {
	if k.Kind != o.Kind {
		return k.Kind < o.Kind
	}
	return k.Text < o.Text
}

// Equal reports structural equality. NaN numbers compare equal
// to each other so that a tree always equals itself.
func Equal(a, b Sexp) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case sexpNil:
		return true
	case *SexpBool:
		return x.Val == b.(*SexpBool).Val
	case *SexpFloat:
		y := b.(*SexpFloat).Val
		if math.IsNaN(x.Val) && math.IsNaN(y) {
			return true
		}
		return x.Val == y
	case *SexpSymbol:
		return x.Name == b.(*SexpSymbol).Name
	case *SexpKeyword:
		return x.Name == b.(*SexpKeyword).Name
	case *SexpStr:
		return x.S == b.(*SexpStr).S
	case *SexpList:
		return equalSlice(x.Val, b.(*SexpList).Val)
	case *SexpVector:
		return equalSlice(x.Val, b.(*SexpVector).Val)
	case *SexpHash:
		y := b.(*SexpHash)
		if len(x.Map) != len(y.Map) {
			return false
		}
		for k, v := range x.Map {
			w, ok := y.Map[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

func equalSlice(a, b []Sexp) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
