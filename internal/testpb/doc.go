// Package testpb is a generated fixture covering the proto3 side of the
// generator: implicit presence, packed repeated scalars, ordered maps with
// message values, proto3 optional and recursive oneofs.
package testpb

//go:generate go run ../../cmd/ldpbgen -I . --out . entry.proto
