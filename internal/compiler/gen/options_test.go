package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestSelectorsMatch(t *testing.T) {
	tests := []struct {
		selectors Selectors
		name      protoreflect.FullName
		want      bool
	}{
		{Selectors{"."}, "decoderbufs.RowMessage", true},
		{Selectors{".decoderbufs"}, "decoderbufs.RowMessage.new_tuple", true},
		{Selectors{".decoderbufs"}, "decoderbufsx.RowMessage", false},
		{Selectors{".decoderbufs.RowMessage"}, "decoderbufs.RowMessage", true},
		{Selectors{".decoderbufs.RowMessage"}, "decoderbufs.RowMessage.Nested.field", true},
		{Selectors{".decoderbufs.RowMessage"}, "decoderbufs.RowMessageExtra", false},
		{Selectors{".decoderbufs.RowMessage.old_tuple"}, "decoderbufs.RowMessage.new_tuple", false},
		{Selectors{".a", ".decoderbufs.Op"}, "decoderbufs.Op", true},
		{Selectors{}, "decoderbufs.Op", false},
		{nil, "decoderbufs.Op", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.selectors.Match(tt.name), "%v.Match(%s)", tt.selectors, tt.name)
	}
}

func TestParseSelectors(t *testing.T) {
	assert.Equal(t, Selectors{}, ParseSelectors(""))
	assert.Equal(t, Selectors{"."}, ParseSelectors("."))
	assert.Equal(t, Selectors{".a.B", ".c"}, ParseSelectors(".a.B:.c"))
}

func TestSummaryAdd(t *testing.T) {
	s := Summary{Files: 1, Messages: 2}
	s.Add(Summary{Files: 1, Enums: 1, OrderedMaps: 3, HashMaps: 1, StructuredTypes: 4})
	assert.Equal(t, Summary{Files: 2, Messages: 2, Enums: 1, OrderedMaps: 3, HashMaps: 1, StructuredTypes: 4}, s)
}
