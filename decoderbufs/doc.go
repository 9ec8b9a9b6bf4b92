// Package decoderbufs holds the Go types of the change events produced by the
// decoderbufs PostgreSQL logical decoding plugin, generated from
// proto/pg_logicaldec.proto.
//
// Every message reads and writes the protobuf binary format with
// UnmarshalWire and MarshalWire, and JSON through encoding/json compatible
// MarshalJSON and UnmarshalJSON methods.
package decoderbufs

//go:generate go run ../cmd/ldpbgen -I ../proto --out . ../proto/pg_logicaldec.proto
