package wirecodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/fnasraoui/logicaldecoding/btreemap"
)

type point struct {
	x, y float64
}

func (p *point) AppendWire(b []byte) []byte {
	if p == nil {
		return b
	}
	b = Double.AppendField(b, 1, p.x)
	return Double.AppendField(b, 2, p.y)
}

func (p *point) UnmarshalWire(b []byte) error {
	*p = point{}
	return DecodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return Double.ConsumeInto(typ, b, &p.x)
		case 2:
			return Double.ConsumeInto(typ, b, &p.y)
		}
		return SkipField(num, typ, b)
	})
}

func marshal(t *testing.T, m proto.Message) []byte {
	t.Helper()
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	require.NoError(t, err)
	return b
}

func TestScalarsMatchReferenceEncoding(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want proto.Message
	}{
		{"bool", Bool.AppendField(nil, 1, true), wrapperspb.Bool(true)},
		{"int32 negative", Int32.AppendField(nil, 1, -42), wrapperspb.Int32(-42)},
		{"int64", Int64.AppendField(nil, 1, 1<<40), wrapperspb.Int64(1 << 40)},
		{"uint32", Uint32.AppendField(nil, 1, 4000000000), wrapperspb.UInt32(4000000000)},
		{"uint64", Uint64.AppendField(nil, 1, 1<<63), wrapperspb.UInt64(1 << 63)},
		{"float", Float.AppendField(nil, 1, 1.5), wrapperspb.Float(1.5)},
		{"double", Double.AppendField(nil, 1, -0.25), wrapperspb.Double(-0.25)},
		{"string", String.AppendField(nil, 1, "public.orders"), wrapperspb.String("public.orders")},
		{"bytes", Bytes.AppendField(nil, 1, []byte{0, 1, 2}), wrapperspb.Bytes([]byte{0, 1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, marshal(t, tt.want), tt.got)
		})
	}
}

func TestScalarsConsumeReferenceEncoding(t *testing.T) {
	b := marshal(t, wrapperspb.Int32(-7))
	num, typ, n := protowire.ConsumeTag(b)
	require.Equal(t, protowire.Number(1), num)

	v, m, err := Int32.ConsumeField(typ, b[n:])
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v)
	assert.Equal(t, len(b)-n, m)
}

func TestZigZagRoundTrip(t *testing.T) {
	for _, v := range []int32{0, -1, 1, -2147483648, 2147483647} {
		b := Sint32.AppendField(nil, 3, v)
		_, typ, n := protowire.ConsumeTag(b)
		got, _, err := Sint32.ConsumeField(typ, b[n:])
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range []int64{-9223372036854775808, -5, 5} {
		b := Sint64.AppendField(nil, 3, v)
		_, typ, n := protowire.ConsumeTag(b)
		got, _, err := Sint64.ConsumeField(typ, b[n:])
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEnumEncodesNegativeAsInt32(t *testing.T) {
	type op int32
	b := Enum[op]().AppendField(nil, 4, op(-1))
	assert.Equal(t, Int32.AppendField(nil, 4, -1), b)

	_, typ, n := protowire.ConsumeTag(b)
	got, _, err := Enum[op]().ConsumeField(typ, b[n:])
	require.NoError(t, err)
	assert.Equal(t, op(-1), got)
}

func TestWireTypeMismatch(t *testing.T) {
	_, _, err := Int32.ConsumeField(protowire.BytesType, []byte{0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWireType))

	_, _, err = MessageOf[point]().ConsumeField(protowire.VarintType, []byte{0})
	assert.True(t, errors.Is(err, ErrWireType))
}

func TestTruncatedInput(t *testing.T) {
	b := String.AppendField(nil, 1, "truncated")
	_, typ, n := protowire.ConsumeTag(b)
	_, _, err := String.ConsumeField(typ, b[n:len(b)-2])
	assert.Error(t, err)
}

func TestRepeatedAcceptsPackedAndUnpacked(t *testing.T) {
	values := []uint32{1, 300, 70000}

	packed := Uint32.AppendPacked(nil, 5, values)
	unpacked := Uint32.AppendRepeated(nil, 5, values)
	assert.NotEqual(t, packed, unpacked)

	for _, b := range [][]byte{packed, unpacked} {
		var got []uint32
		err := DecodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
			require.Equal(t, protowire.Number(5), num)
			return Uint32.ConsumeRepeated(typ, b, &got)
		})
		require.NoError(t, err)
		assert.Equal(t, values, got)
	}

	assert.Empty(t, Uint32.AppendPacked(nil, 5, nil))
}

func TestBytesAreCopiedOnDecode(t *testing.T) {
	b := Bytes.AppendField(nil, 1, []byte("abc"))
	_, typ, n := protowire.ConsumeTag(b)
	got, _, err := Bytes.ConsumeField(typ, b[n:])
	require.NoError(t, err)

	b[len(b)-1] = 'z'
	assert.Equal(t, []byte("abc"), got)
}

func TestMessageRoundTrip(t *testing.T) {
	in := []*point{{x: 1, y: 2}, {x: -3.5, y: 0}}
	b := MessageOf[point]().AppendRepeated(nil, 10, in)

	var out []*point
	err := DecodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		return MessageOf[point]().ConsumeRepeated(typ, b, &out)
	})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNilMessageEncodesAsEmpty(t *testing.T) {
	b := MessageOf[point]().AppendField(nil, 2, nil)
	assert.Equal(t, []byte{0x12, 0x00}, b)
}

func TestSkipFieldIgnoresUnknown(t *testing.T) {
	b := String.AppendField(nil, 99, "future column")
	b = Double.AppendField(b, 1, 4)

	var p point
	require.NoError(t, p.UnmarshalWire(b))
	assert.Equal(t, point{x: 4}, p)
}

func TestMapEncodingIsKeyOrdered(t *testing.T) {
	var a, b btreemap.Map[string, string]
	a.Set("b", "2")
	a.Set("a", "1")
	b.Set("a", "1")
	b.Set("b", "2")

	encA := AppendMap[string, string](nil, 7, a, String, String)
	encB := AppendMap[string, string](nil, 7, b, String, String)
	assert.Equal(t, encA, encB)

	entry := String.AppendField(nil, 1, "a")
	entry = String.AppendField(entry, 2, "1")
	want := protowire.AppendTag(nil, 7, protowire.BytesType)
	want = protowire.AppendBytes(want, entry)
	assert.Equal(t, want, encA[:len(want)])
}

func TestMapEntryRoundTrip(t *testing.T) {
	var in btreemap.Map[int32, *point]
	in.Set(2, &point{x: 2})
	in.Set(-1, &point{y: 1})

	b := AppendMap[int32, *point](nil, 3, in, Int32, MessageOf[point]())

	var out btreemap.Map[int32, *point]
	err := DecodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		return ConsumeMapEntry[int32, *point](typ, b, &out, Int32, MessageOf[point]())
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, 2}, out.Keys())
	v, _ := out.Get(2)
	assert.Equal(t, &point{x: 2}, v)
}

func TestGoMapEntryRoundTrip(t *testing.T) {
	in := map[string]int64{"lsn": 42}
	b := AppendGoMap[string, int64](nil, 1, in, String, Int64)

	var out map[string]int64
	err := DecodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		return ConsumeGoMapEntry[string, int64](typ, b, &out, String, Int64)
	})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
