package main

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/loader"
)

const schema = `syntax = "proto3";
package cdc;
option go_package = "example.com/cdc";
message Change {
  map<string, string> columns = 1;
  optional string origin = 2;
}
`

func request(t *testing.T, parameter string) *pluginpb.CodeGeneratorRequest {
	t.Helper()
	l := loader.New(loader.MapSources{"cdc.proto": schema})
	res, err := l.Load(context.Background(), []string{"cdc.proto"})
	require.NoError(t, err)
	req := gen.NewRequest(res.Files, "")
	if parameter != "" {
		*req.Parameter += "," + parameter
	}
	return req
}

func run(t *testing.T, parameter string) string {
	t.Helper()
	var (
		flags flag.FlagSet
		p     params
	)
	p.register(&flags)
	plugin, err := protogen.Options{ParamFunc: flags.Set}.New(request(t, parameter))
	require.NoError(t, err)
	require.NoError(t, generate(plugin, &p))

	resp := plugin.Response()
	require.Empty(t, resp.GetError())
	assert.Equal(t, uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL), resp.GetSupportedFeatures())
	require.Len(t, resp.File, 1)
	assert.Equal(t, "cdc.ldpb.go", resp.File[0].GetName())
	return resp.File[0].GetContent()
}

func TestDefaultsEnableEverything(t *testing.T) {
	out := run(t, "")
	assert.Contains(t, out, "btreemap.Map[string, string]")
	assert.Contains(t, out, "MarshalJSON")
}

func TestParametersNarrowSelection(t *testing.T) {
	out := run(t, "ordered_maps=,structured_format=.other")
	assert.Contains(t, out, "map[string]string")
	assert.False(t, strings.Contains(out, "MarshalJSON"))
}

func TestUnknownParameterFails(t *testing.T) {
	var (
		flags flag.FlagSet
		p     params
	)
	p.register(&flags)
	_, err := protogen.Options{ParamFunc: flags.Set}.New(request(t, "no_such_option=1"))
	assert.Error(t, err)
}
