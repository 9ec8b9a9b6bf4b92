// Command protoc-gen-go-ldpb is a protoc plugin generating the same Go types
// as ldpbgen, for builds driven by protoc or buf.
//
//	protoc --go-ldpb_out=. --go-ldpb_opt=paths=source_relative \
//	  --go-ldpb_opt=ordered_maps=.decoderbufs pg_logicaldec.proto
//
// Parameters:
//
//	ordered_maps=<selectors>       map fields generated as btreemap.Map (default ".")
//	structured_format=<selectors>  types that get JSON methods (default ".")
//
// Selectors are ':' separated; an empty value disables the feature.
package main

import (
	"flag"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
)

type params struct {
	orderedMaps      string
	structuredFormat string
}

func (p *params) register(flags *flag.FlagSet) {
	flags.StringVar(&p.orderedMaps, "ordered_maps", ".", "selectors of map fields generated as btreemap.Map")
	flags.StringVar(&p.structuredFormat, "structured_format", ".", "selectors of types that get JSON methods")
}

func (p *params) options() gen.Options {
	return gen.Options{
		OrderedMaps:      gen.ParseSelectors(p.orderedMaps),
		StructuredFormat: gen.ParseSelectors(p.structuredFormat),
	}
}

func generate(plugin *protogen.Plugin, p *params) error {
	plugin.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
	_, err := gen.Generate(plugin, p.options())
	return err
}

func main() {
	var (
		flags flag.FlagSet
		p     params
	)
	p.register(&flags)
	protogen.Options{ParamFunc: flags.Set}.Run(func(plugin *protogen.Plugin) error {
		return generate(plugin, &p)
	})
}
