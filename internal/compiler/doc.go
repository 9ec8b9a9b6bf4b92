// Package compiler drives a schema compilation: it loads the configured
// schemas, generates Go sources for them and writes or verifies the result.
//
// Compile and CompileSources return the generated sources without touching
// the filesystem. A Driver adds logging, metrics, tracing and phase hooks
// around a single compilation that ends in the output directory.
package compiler
