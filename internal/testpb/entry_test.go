package testpb

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/fnasraoui/logicaldecoding/btreemap"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/loader"
)

func ptr[T any](v T) *T { return &v }

func sampleEntry() *Entry {
	e := &Entry{
		Name:    "orders",
		Level:   Level_LEVEL_HIGH,
		Samples: []int64{3, -1, 1 << 40},
		Note:    ptr(""),
		Blob:    []byte("raw"),
		Choice:  &Entry_Nested{Nested: &Entry{Name: "inner", Choice: &Entry_Text{Text: "leaf"}}},
		Meta:    &Entry_Meta{Source: "wal"},
	}
	for _, k := range []string{"delete", "insert", "update", "begin"} {
		e.Counts.Set(k, int32(len(k)))
	}
	e.Children.Set(30, &Entry{Name: "c30"})
	e.Children.Set(-5, &Entry{Name: "c-5", Level: Level_LEVEL_LOW})
	e.Children.Set(7, &Entry{Name: "c7"})
	return e
}

func wire(t *testing.T, e *Entry) []byte {
	t.Helper()
	b, err := e.MarshalWire()
	require.NoError(t, err)
	return b
}

func TestWireRoundTrip(t *testing.T) {
	e := sampleEntry()
	b := wire(t, e)

	var got Entry
	require.NoError(t, got.UnmarshalWire(b))
	assert.Equal(t, b, wire(t, &got))
	assert.Equal(t, []string{"begin", "delete", "insert", "update"}, got.GetCounts().Keys())
	assert.Equal(t, []int64{-5, 7, 30}, got.GetChildren().Keys())
	assert.Equal(t, "leaf", got.GetNested().GetText())
	require.NotNil(t, got.Note)
	assert.Equal(t, "", *got.Note)
	assert.Equal(t, e.Samples, got.Samples)
}

func TestMapEncodingIgnoresInsertionOrder(t *testing.T) {
	var a, b Entry
	for _, k := range []string{"x", "a", "m"} {
		a.Counts.Set(k, 1)
	}
	for _, k := range []string{"m", "x", "a"} {
		b.Counts.Set(k, 1)
	}
	assert.Equal(t, wire(t, &a), wire(t, &b))

	var keys []string
	buf := wire(t, &a)
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		require.Positive(t, n)
		require.Equal(t, protowire.Number(4), num)
		require.Equal(t, protowire.BytesType, typ)
		entry, m := protowire.ConsumeBytes(buf[n:])
		require.Positive(t, m)
		_, _, kn := protowire.ConsumeTag(entry)
		key, _ := protowire.ConsumeString(entry[kn:])
		keys = append(keys, key)
		buf = buf[n+m:]
	}
	assert.Equal(t, []string{"a", "m", "x"}, keys)
}

func TestImplicitPresence(t *testing.T) {
	assert.Empty(t, wire(t, &Entry{}))
	assert.Empty(t, wire(t, &Entry{Level: Level_LEVEL_UNSPECIFIED, Blob: []byte{}}))
	// A set proto3 optional field is written even when it holds the zero value.
	assert.Equal(t, []byte{0x32, 0x00}, wire(t, &Entry{Note: ptr("")}))
}

func TestUnpackedSamplesAreAccepted(t *testing.T) {
	var b []byte
	for _, v := range []int64{5, 6} {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	var got Entry
	require.NoError(t, got.UnmarshalWire(b))
	assert.Equal(t, []int64{5, 6}, got.Samples)
}

func TestWireInteropWithProtobufRuntime(t *testing.T) {
	res, err := loader.New(loader.IncludePaths{"."}).Load(context.Background(), []string{"entry.proto"})
	require.NoError(t, err)
	md := res.Files[0].Messages().ByName("Entry")
	require.NotNil(t, md)

	e := sampleEntry()
	dyn := dynamicpb.NewMessage(md)
	require.NoError(t, proto.Unmarshal(wire(t, e), dyn))
	assert.Equal(t, 4, dyn.Get(md.Fields().ByName("counts")).Map().Len())
	assert.True(t, dyn.Has(md.Fields().ByName("note")))

	encoded, err := proto.MarshalOptions{Deterministic: true}.Marshal(dyn)
	require.NoError(t, err)
	var got Entry
	require.NoError(t, got.UnmarshalWire(encoded))
	assert.Equal(t, wire(t, e), wire(t, &got))
}

func TestJSONRoundTrip(t *testing.T) {
	e := sampleEntry()
	b, err := e.MarshalJSON()
	require.NoError(t, err)

	var got Entry
	require.NoError(t, got.UnmarshalJSON(b))
	assert.Equal(t, wire(t, e), wire(t, &got))
	assert.Equal(t, "inner", got.GetNested().GetName())
}

func TestJSONMapsInKeyOrder(t *testing.T) {
	var e Entry
	e.Counts = btreemap.From(map[string]int32{"zeta": 1, "alpha": 2, "mid": 3})
	e.Children.Set(10, &Entry{})
	e.Children.Set(-2, &Entry{})
	b, err := e.MarshalJSON()
	require.NoError(t, err)

	s := string(b)
	assert.JSONEq(t, `{"counts":{"alpha":2,"mid":3,"zeta":1},"children":{"-2":{"children":{},"counts":{}},"10":{"children":{},"counts":{}}}}`, s)
	assert.Less(t, strings.Index(s, `"alpha"`), strings.Index(s, `"mid"`))
	assert.Less(t, strings.Index(s, `"mid"`), strings.Index(s, `"zeta"`))
	assert.Less(t, strings.Index(s, `"-2"`), strings.Index(s, `"10"`))
}

func TestJSONEnumsAndOneof(t *testing.T) {
	b, err := (&Entry{Level: Level_LEVEL_LOW, Choice: &Entry_Text{Text: "hi"}}).MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"level":"LEVEL_LOW"`)
	assert.Contains(t, string(b), `"text":"hi"`)

	var got Entry
	require.NoError(t, got.UnmarshalJSON([]byte(`{"level":2,"nested":{}}`)))
	assert.Equal(t, Level_LEVEL_HIGH, got.Level)
	assert.NotNil(t, got.GetNested())

	err = got.UnmarshalJSON([]byte(`{"text":"a","nested":{}}`))
	assert.ErrorContains(t, err, "oneof choice")
}

func TestNilGetters(t *testing.T) {
	var e *Entry
	assert.Zero(t, e.GetCounts().Len())
	assert.Zero(t, e.GetChildren().Len())
	assert.Empty(t, e.GetNote())
	assert.Nil(t, e.GetMeta())
	assert.Empty(t, e.GetMeta().GetSource())
	assert.Equal(t, "LEVEL_UNSPECIFIED", e.GetLevel().String())
}
