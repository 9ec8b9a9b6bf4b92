// Package logicaldecoding compiles the protobuf schema of a PostgreSQL
// logical-decoding output plugin (decoderbufs) into Go.
//
// The generated types encode and decode the protobuf binary format through
// the wirecodec package, keep map fields ordered by key with btreemap, and can
// additionally be rendered as JSON through jsoncodec. Both behaviours are
// selected per schema element with selectors such as "." (everything),
// ".decoderbufs" or ".decoderbufs.RowMessage.new_tuple".
//
// Compile and CompileSources return the generated sources in memory. A Driver
// runs one compilation end to end: it validates Config, loads the schemas and
// their imports, generates one .ldpb.go file per schema and writes the files
// to the output directory, or compares them with it in verify mode.
//
//	conf := logicaldecoding.Default()
//	conf.SchemaPaths = []string{"proto/pg_logicaldec.proto"}
//	conf.IncludePaths = []string{"proto"}
//	conf.OutputDir = "decoderbufs"
//	d, err := logicaldecoding.NewDriver(conf, logicaldecoding.DriverDependencies{
//		Logger: logicaldecoding.NewSlogLogger(slog.Default()),
//	})
//	if err != nil {
//		return err
//	}
//	return d.Run(ctx)
//
// # Errors
//
// Every compilation failure is a *SchemaCompilationError with a Kind: input
// for unreadable schema paths, grammar for syntax errors, resolution for
// unknown types, missing imports and import cycles, and output for sources
// that cannot be produced or written. Positions point into the offending
// schema when one is known.
//
// # Observability
//
// DriverDependencies accepts a Logger (any Watermill adapter or slog), Metrics
// backed by Prometheus and phase Hooks. Each run also opens OpenTelemetry spans
// for the Run and for every phase.
package logicaldecoding
