// Package wirecodec implements the protobuf binary wire format for generated
// types on top of protowire. Generated AppendWire/UnmarshalWire methods are
// thin sequences of calls into the codecs defined here.
package wirecodec

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrWireType is returned when a field arrives with a wire type that does not
// match its declared kind.
var ErrWireType = errors.New("wirecodec: unexpected wire type")

// Message is implemented by every generated message.
type Message interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(b []byte) error
}

// Codec encodes and decodes single field values of type T.
type Codec[T any] interface {
	AppendField(b []byte, num protowire.Number, v T) []byte
	ConsumeField(typ protowire.Type, b []byte) (T, int, error)
}

// Scalar is the codec of a non-message protobuf kind.
type Scalar[T any] struct {
	wireType protowire.Type
	append   func(b []byte, v T) []byte
	consume  func(b []byte) (T, int)
}

var (
	Bool = Scalar[bool]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v bool) []byte { return protowire.AppendVarint(b, protowire.EncodeBool(v)) },
		consume: func(b []byte) (bool, int) {
			v, n := protowire.ConsumeVarint(b)
			return protowire.DecodeBool(v), n
		},
	}
	Int32 = Scalar[int32]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v int32) []byte { return protowire.AppendVarint(b, uint64(v)) },
		consume: func(b []byte) (int32, int) {
			v, n := protowire.ConsumeVarint(b)
			return int32(v), n
		},
	}
	Sint32 = Scalar[int32]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v int32) []byte { return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v))) },
		consume: func(b []byte) (int32, int) {
			v, n := protowire.ConsumeVarint(b)
			return int32(protowire.DecodeZigZag(v & math.MaxUint32)), n
		},
	}
	Uint32 = Scalar[uint32]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v uint32) []byte { return protowire.AppendVarint(b, uint64(v)) },
		consume: func(b []byte) (uint32, int) {
			v, n := protowire.ConsumeVarint(b)
			return uint32(v), n
		},
	}
	Int64 = Scalar[int64]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v int64) []byte { return protowire.AppendVarint(b, uint64(v)) },
		consume: func(b []byte) (int64, int) {
			v, n := protowire.ConsumeVarint(b)
			return int64(v), n
		},
	}
	Sint64 = Scalar[int64]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v int64) []byte { return protowire.AppendVarint(b, protowire.EncodeZigZag(v)) },
		consume: func(b []byte) (int64, int) {
			v, n := protowire.ConsumeVarint(b)
			return protowire.DecodeZigZag(v), n
		},
	}
	Uint64 = Scalar[uint64]{
		wireType: protowire.VarintType,
		append:   protowire.AppendVarint,
		consume:  protowire.ConsumeVarint,
	}
	Fixed32 = Scalar[uint32]{
		wireType: protowire.Fixed32Type,
		append:   protowire.AppendFixed32,
		consume:  protowire.ConsumeFixed32,
	}
	Sfixed32 = Scalar[int32]{
		wireType: protowire.Fixed32Type,
		append:   func(b []byte, v int32) []byte { return protowire.AppendFixed32(b, uint32(v)) },
		consume: func(b []byte) (int32, int) {
			v, n := protowire.ConsumeFixed32(b)
			return int32(v), n
		},
	}
	Fixed64 = Scalar[uint64]{
		wireType: protowire.Fixed64Type,
		append:   protowire.AppendFixed64,
		consume:  protowire.ConsumeFixed64,
	}
	Sfixed64 = Scalar[int64]{
		wireType: protowire.Fixed64Type,
		append:   func(b []byte, v int64) []byte { return protowire.AppendFixed64(b, uint64(v)) },
		consume: func(b []byte) (int64, int) {
			v, n := protowire.ConsumeFixed64(b)
			return int64(v), n
		},
	}
	Float = Scalar[float32]{
		wireType: protowire.Fixed32Type,
		append:   func(b []byte, v float32) []byte { return protowire.AppendFixed32(b, math.Float32bits(v)) },
		consume: func(b []byte) (float32, int) {
			v, n := protowire.ConsumeFixed32(b)
			return math.Float32frombits(v), n
		},
	}
	Double = Scalar[float64]{
		wireType: protowire.Fixed64Type,
		append:   func(b []byte, v float64) []byte { return protowire.AppendFixed64(b, math.Float64bits(v)) },
		consume: func(b []byte) (float64, int) {
			v, n := protowire.ConsumeFixed64(b)
			return math.Float64frombits(v), n
		},
	}
	String = Scalar[string]{
		wireType: protowire.BytesType,
		append:   protowire.AppendString,
		consume:  protowire.ConsumeString,
	}
	Bytes = Scalar[[]byte]{
		wireType: protowire.BytesType,
		append:   protowire.AppendBytes,
		consume: func(b []byte) ([]byte, int) {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, n
			}
			return append([]byte{}, v...), n
		},
	}
)

// Enum returns the codec of an enum type. Enums are encoded as int32 varints.
func Enum[E ~int32]() Scalar[E] {
	return Scalar[E]{
		wireType: protowire.VarintType,
		append:   func(b []byte, v E) []byte { return protowire.AppendVarint(b, uint64(v)) },
		consume: func(b []byte) (E, int) {
			v, n := protowire.ConsumeVarint(b)
			return E(int32(v)), n
		},
	}
}

// AppendField appends a tagged value.
func (s Scalar[T]) AppendField(b []byte, num protowire.Number, v T) []byte {
	b = protowire.AppendTag(b, num, s.wireType)
	return s.append(b, v)
}

// AppendRepeated appends each value as its own tagged field.
func (s Scalar[T]) AppendRepeated(b []byte, num protowire.Number, vs []T) []byte {
	for _, v := range vs {
		b = s.AppendField(b, num, v)
	}
	return b
}

// AppendPacked appends vs as a single length-delimited packed field. Nothing
// is written for an empty slice.
func (s Scalar[T]) AppendPacked(b []byte, num protowire.Number, vs []T) []byte {
	if len(vs) == 0 {
		return b
	}
	var payload []byte
	for _, v := range vs {
		payload = s.append(payload, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, payload)
}

// ConsumeField decodes one value whose tag has already been consumed.
func (s Scalar[T]) ConsumeField(typ protowire.Type, b []byte) (T, int, error) {
	var zero T
	if typ != s.wireType {
		return zero, 0, fmt.Errorf("%w: got %d, want %d", ErrWireType, typ, s.wireType)
	}
	v, n := s.consume(b)
	if n < 0 {
		return zero, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// ConsumeInto decodes one value into dst.
func (s Scalar[T]) ConsumeInto(typ protowire.Type, b []byte, dst *T) (int, error) {
	v, n, err := s.ConsumeField(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = v
	return n, nil
}

// ConsumeOptional decodes one value and stores a pointer to it in dst.
func (s Scalar[T]) ConsumeOptional(typ protowire.Type, b []byte, dst **T) (int, error) {
	v, n, err := s.ConsumeField(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = &v
	return n, nil
}

// ConsumeRepeated decodes either a single value or, for packable kinds, a
// packed run of values, and appends the result to dst.
func (s Scalar[T]) ConsumeRepeated(typ protowire.Type, b []byte, dst *[]T) (int, error) {
	if typ == protowire.BytesType && s.wireType != protowire.BytesType {
		payload, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(payload) > 0 {
			v, m := s.consume(payload)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			*dst = append(*dst, v)
			payload = payload[m:]
		}
		return n, nil
	}
	v, n, err := s.ConsumeField(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, v)
	return n, nil
}

// MessageCodec is the codec of an embedded message type M, handled through
// its pointer type P.
type MessageCodec[M any, P interface {
	*M
	Message
}] struct{}

// MessageOf returns the codec of message type M.
func MessageOf[M any, P interface {
	*M
	Message
}]() MessageCodec[M, P] {
	return MessageCodec[M, P]{}
}

// AppendField appends v as a length-delimited field. A nil message is written
// as an empty one.
func (MessageCodec[M, P]) AppendField(b []byte, num protowire.Number, v P) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v.AppendWire(nil))
}

// AppendRepeated appends each message as its own field.
func (c MessageCodec[M, P]) AppendRepeated(b []byte, num protowire.Number, vs []P) []byte {
	for _, v := range vs {
		b = c.AppendField(b, num, v)
	}
	return b
}

// ConsumeField decodes one embedded message into a newly allocated value.
func (MessageCodec[M, P]) ConsumeField(typ protowire.Type, b []byte) (P, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("%w: got %d, want %d", ErrWireType, typ, protowire.BytesType)
	}
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	p := P(new(M))
	if err := p.UnmarshalWire(payload); err != nil {
		return nil, 0, err
	}
	return p, n, nil
}

// ConsumeInto decodes one embedded message into dst.
func (c MessageCodec[M, P]) ConsumeInto(typ protowire.Type, b []byte, dst *P) (int, error) {
	v, n, err := c.ConsumeField(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = v
	return n, nil
}

// ConsumeRepeated decodes one embedded message and appends it to dst.
func (c MessageCodec[M, P]) ConsumeRepeated(typ protowire.Type, b []byte, dst *[]P) (int, error) {
	v, n, err := c.ConsumeField(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = append(*dst, v)
	return n, nil
}

// DecodeFields walks the fields of an encoded message. fn receives each field
// number and wire type with the bytes following the tag, and returns how many
// of them the value occupied.
func DecodeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[m:]
	}
	return nil
}

// SkipField consumes a field the message does not declare.
func SkipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
