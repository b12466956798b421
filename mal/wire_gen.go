package mal

// NOTE: THIS FILE WAS PRODUCED BY THE
// MSGP CODE GENERATION TOOL (github.com/tinylib/msgp)
// DO NOT EDIT

import (
	"github.com/tinylib/msgp/msgp"
)

// DecodeMsg implements msgp.Decodable
func (z *WireForm) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "kind":
			z.Kind, err = dc.ReadString()
			if err != nil {
				return
			}
		case "str":
			z.Str, err = dc.ReadString()
			if err != nil {
				return
			}
		case "num":
			z.Num, err = dc.ReadFloat64()
			if err != nil {
				return
			}
		case "bool":
			z.Bool, err = dc.ReadBool()
			if err != nil {
				return
			}
		case "items":
			var zb0002 uint32
			zb0002, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.Items) >= int(zb0002) {
				z.Items = (z.Items)[:zb0002]
			} else {
				z.Items = make([]WireForm, zb0002)
			}
			for za0001 := range z.Items {
				err = z.Items[za0001].DecodeMsg(dc)
				if err != nil {
					return
				}
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *WireForm) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 5
	// write "kind"
	err = en.Append(0x85, 0xa4, 0x6b, 0x69, 0x6e, 0x64)
	if err != nil {
		return
	}
	err = en.WriteString(z.Kind)
	if err != nil {
		return
	}
	// write "str"
	err = en.Append(0xa3, 0x73, 0x74, 0x72)
	if err != nil {
		return
	}
	err = en.WriteString(z.Str)
	if err != nil {
		return
	}
	// write "num"
	err = en.Append(0xa3, 0x6e, 0x75, 0x6d)
	if err != nil {
		return
	}
	err = en.WriteFloat64(z.Num)
	if err != nil {
		return
	}
	// write "bool"
	err = en.Append(0xa4, 0x62, 0x6f, 0x6f, 0x6c)
	if err != nil {
		return
	}
	err = en.WriteBool(z.Bool)
	if err != nil {
		return
	}
	// write "items"
	err = en.Append(0xa5, 0x69, 0x74, 0x65, 0x6d, 0x73)
	if err != nil {
		return
	}
	err = en.WriteArrayHeader(uint32(len(z.Items)))
	if err != nil {
		return
	}
	for za0001 := range z.Items {
		err = z.Items[za0001].EncodeMsg(en)
		if err != nil {
			return
		}
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *WireForm) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 5
	// string "kind"
	o = append(o, 0x85, 0xa4, 0x6b, 0x69, 0x6e, 0x64)
	o = msgp.AppendString(o, z.Kind)
	// string "str"
	o = append(o, 0xa3, 0x73, 0x74, 0x72)
	o = msgp.AppendString(o, z.Str)
	// string "num"
	o = append(o, 0xa3, 0x6e, 0x75, 0x6d)
	o = msgp.AppendFloat64(o, z.Num)
	// string "bool"
	o = append(o, 0xa4, 0x62, 0x6f, 0x6f, 0x6c)
	o = msgp.AppendBool(o, z.Bool)
	// string "items"
	o = append(o, 0xa5, 0x69, 0x74, 0x65, 0x6d, 0x73)
	o = msgp.AppendArrayHeader(o, uint32(len(z.Items)))
	for za0001 := range z.Items {
		o, err = z.Items[za0001].MarshalMsg(o)
		if err != nil {
			return
		}
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *WireForm) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "kind":
			z.Kind, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "str":
			z.Str, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "num":
			z.Num, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return
			}
		case "bool":
			z.Bool, bts, err = msgp.ReadBoolBytes(bts)
			if err != nil {
				return
			}
		case "items":
			var zb0002 uint32
			zb0002, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.Items) >= int(zb0002) {
				z.Items = (z.Items)[:zb0002]
			} else {
				z.Items = make([]WireForm, zb0002)
			}
			for za0001 := range z.Items {
				bts, err = z.Items[za0001].UnmarshalMsg(bts)
				if err != nil {
					return
				}
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *WireForm) Msgsize() (s int) {
	s = 1 + 5 + msgp.StringPrefixSize + len(z.Kind) + 4 + msgp.StringPrefixSize + len(z.Str) + 4 + msgp.Float64Size + 5 + msgp.BoolSize + 6 + msgp.ArrayHeaderSize
	for za0001 := range z.Items {
		s += z.Items[za0001].Msgsize()
	}
	return
}
