package mal

import (
	"errors"
	"fmt"
	"math"

	"github.com/tinylib/msgp/msgp"
	"github.com/ugorji/go/codec"
)

//go:generate msgp

//msgp:ignore jsonHelper

// WireForm is the serializable shadow of a Sexp tree. Hash-maps
// flatten to alternating key, value Items in printed order.
// Non-finite numbers travel in Str ("inf", "-inf", "NaN") since
// JSON has no spelling for them.
type WireForm struct {
	Kind  string     `codec:"kind" msg:"kind"`
	Str   string     `codec:"str,omitempty" msg:"str"`
	Num   float64    `codec:"num,omitempty" msg:"num"`
	Bool  bool       `codec:"bool,omitempty" msg:"bool"`
	Items []WireForm `codec:"items,omitempty" msg:"items"`
}

var ErrUnknownWireKind = errors.New("unknown wire kind")

// ToWire converts a tree into its wire form.
func ToWire(x Sexp) WireForm {
	w := WireForm{Kind: x.Type().String()}
	switch e := x.(type) {
	case *SexpBool:
		w.Bool = e.Val
	case *SexpFloat:
		if math.IsInf(e.Val, 0) || math.IsNaN(e.Val) {
			w.Str = e.SexpString(nil)
		} else {
			w.Num = e.Val
		}
	case *SexpSymbol:
		w.Str = e.Name
	case *SexpKeyword:
		w.Str = e.Name
	case *SexpStr:
		w.Str = e.S
	case *SexpList:
		w.Items = toWireSlice(e.Val)
	case *SexpVector:
		w.Items = toWireSlice(e.Val)
	case *SexpHash:
		for _, k := range e.SortedKeys() {
			w.Items = append(w.Items, ToWire(k.Sexp()), ToWire(e.Map[k]))
		}
	}
	return w
}

func toWireSlice(xs []Sexp) []WireForm {
	ws := make([]WireForm, len(xs))
	for i, x := range xs {
		ws[i] = ToWire(x)
	}
	return ws
}

// Sexp rebuilds the tree, validating the wire form on the way.
func (w *WireForm) Sexp() (Sexp, error) {
	switch w.Kind {
	case "nil":
		return SexpNil, nil
	case "bool":
		return MakeBool(w.Bool), nil
	case "number":
		if w.Str != "" {
			f, ok := ParseNumber(w.Str)
			if !ok {
				return nil, fmt.Errorf("bad number '%s' in wire form", w.Str)
			}
			return MakeFloat(f), nil
		}
		return MakeFloat(w.Num), nil
	case "symbol":
		return MakeSymbol(w.Str), nil
	case "keyword":
		return MakeKeyword(w.Str), nil
	case "string":
		return MakeStr(w.Str), nil
	case "list", "vector", "hashmap":
		xs := make([]Sexp, len(w.Items))
		for i := range w.Items {
			x, err := w.Items[i].Sexp()
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		switch w.Kind {
		case "list":
			return MakeList(xs), nil
		case "vector":
			return MakeVector(xs), nil
		}
		return MakeHash(xs)
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownWireKind, w.Kind)
}

type jsonHelper struct {
	jh codec.JsonHandle
}

var wireJson = newJsonHelper()

func newJsonHelper() *jsonHelper {
	j := &jsonHelper{}
	j.jh.Canonical = true
	j.jh.HTMLCharsAsIs = true
	return j
}

// ToJson encodes the wire form of x as JSON.
func ToJson(x Sexp) ([]byte, error) {
	w := ToWire(x)
	var out []byte
	enc := codec.NewEncoderBytes(&out, &wireJson.jh)
	if err := enc.Encode(&w); err != nil {
		return nil, err
	}
	return out, nil
}

// JsonToSexp decodes JSON produced by ToJson.
func JsonToSexp(by []byte) (Sexp, error) {
	var w WireForm
	dec := codec.NewDecoderBytes(by, &wireJson.jh)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("JsonToSexp failed at decode step: '%s'", err)
	}
	return w.Sexp()
}

// SexpToMsgpack encodes the wire form of x as msgpack.
func SexpToMsgpack(x Sexp) ([]byte, error) {
	w := ToWire(x)
	return w.MarshalMsg(nil)
}

// MsgpackToSexp decodes msgpack produced by SexpToMsgpack.
func MsgpackToSexp(by []byte) (Sexp, error) {
	var w WireForm
	if _, err := w.UnmarshalMsg(by); err != nil {
		return nil, err
	}
	return w.Sexp()
}

// EncodeForm writes the wire form of x to en. Call en.Flush when done.
func EncodeForm(en *msgp.Writer, x Sexp) error {
	wf := ToWire(x)
	return wf.EncodeMsg(en)
}

// DecodeForm reads the next form written by EncodeForm. The reader
// buffers, so keep one per stream.
func DecodeForm(dc *msgp.Reader) (Sexp, error) {
	var wf WireForm
	if err := wf.DecodeMsg(dc); err != nil {
		return nil, err
	}
	return wf.Sexp()
}
