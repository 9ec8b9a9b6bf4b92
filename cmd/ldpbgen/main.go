// Command ldpbgen compiles logical-decoding protobuf schemas into Go sources.
//
// Usage:
//
//	ldpbgen -I proto --out decoderbufs proto/pg_logicaldec.proto
//
// Every schema named on the command line is compiled together with the
// schemas it imports. One <name>.ldpb.go file is written per schema, below the
// output directory, mirroring the schema's path relative to its include path.
//
// Map fields are generated as btreemap.Map and every message gets JSON
// methods unless narrowed with --ordered-maps and --structured-format, which
// take ':' separated selectors such as ".decoderbufs.RowMessage". An empty
// value disables the feature.
//
// With --verify nothing is written; the command fails when the output
// directory does not hold exactly what would be generated.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ldpbgen:", err)
		os.Exit(exitCode(err))
	}
}
