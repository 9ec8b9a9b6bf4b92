package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnasraoui/logicaldecoding"
)

const schema = `syntax = "proto2";
package decoderbufs;
option go_package = "example.com/pg/decoderbufs";
message DatumMessage {
  optional string column_name = 1;
  map<string, string> labels = 2;
}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func setup(t *testing.T) (protoDir, outDir string) {
	t.Helper()
	protoDir, outDir = t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(protoDir, "pg_logicaldec.proto"), []byte(schema), 0o600))
	return protoDir, outDir
}

func TestGenerateAndVerify(t *testing.T) {
	protoDir, outDir := setup(t)
	metricsFile := filepath.Join(t.TempDir(), "ldpb.prom")
	src := filepath.Join(protoDir, "pg_logicaldec.proto")

	logs, err := execute(t, "-I", protoDir, "--out", outDir, "--metrics-file", metricsFile, src)
	require.NoError(t, err)
	assert.Contains(t, logs, "Schema compilation finished")

	generated, err := os.ReadFile(filepath.Join(outDir, "pg_logicaldec.ldpb.go"))
	require.NoError(t, err)
	assert.Contains(t, string(generated), "btreemap.Map[string, string]")

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `ldpb_compile_runs_total{result="success"} 1`)

	_, err = execute(t, "-I", protoDir, "--out", outDir, "--verify", src)
	require.NoError(t, err)

	_, err = execute(t, "-I", protoDir, "--out", outDir, "--verify", "--ordered-maps=", src)
	require.Error(t, err)
	assert.ErrorIs(t, err, logicaldecoding.ErrOutOfDate)
	assert.Equal(t, 3, exitCode(err))
}

func TestConfigFileWithFlagOverrides(t *testing.T) {
	protoDir, outDir := setup(t)
	confPath := filepath.Join(protoDir, "ldpb.yaml")
	require.NoError(t, os.WriteFile(confPath, []byte(`schemas: [pg_logicaldec.proto]
includes: [.]
output: unused
structured_format: []
`), 0o600))

	_, err := execute(t, "--config", confPath, "--out", outDir, "--log-level", "error")
	require.NoError(t, err)

	generated, err := os.ReadFile(filepath.Join(outDir, "pg_logicaldec.ldpb.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(generated), "MarshalJSON")
}

func TestMissingOutputIsUsageError(t *testing.T) {
	protoDir, _ := setup(t)
	_, err := execute(t, "-I", protoDir, filepath.Join(protoDir, "pg_logicaldec.proto"))
	require.Error(t, err)
	assert.ErrorIs(t, err, logicaldecoding.ErrOutputRequired)
	assert.Equal(t, 2, exitCode(err))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 2, exitCode(logicaldecoding.ErrLoggerRequired))
}
