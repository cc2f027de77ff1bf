package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradeng/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gradeng "+version+"\n", out)
}

func TestGrad(t *testing.T) {
	out, _, err := execute(t, "grad", "--a", "2", "--b", "3")
	require.NoError(t, err)
	assert.Equal(t, "f = 8\ndf/da = 4\ndf/db = 2\n", out)
}

func TestGradTrace(t *testing.T) {
	out, _, err := execute(t, "grad", "--trace")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3+4)
	assert.Contains(t, lines[len(lines)-1], "+")
	assert.Contains(t, out, "Value(data=2, grad=4)")
}

func TestTrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	cfg := `
dataset:
  name: xor
  samples: 20
model:
  hidden: [4]
train:
  epochs: 5
log:
  every: 1
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, logs, err := execute(t, "train", "--config", path, "--epochs", "3", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "epochs=3 ")
	assert.Contains(t, logs, "training started")
	assert.Contains(t, logs, "run_id=")
}

func writeCSV(t *testing.T, rows int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("label,x0,x1\n")
	for i := 0; i < rows; i++ {
		label := 1
		if i%2 == 0 {
			label = -1
		}
		fmt.Fprintf(&b, "%d,%d,%d\n", label, i, -i)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func TestLoadData_CSV(t *testing.T) {
	path := writeCSV(t, 150)

	cfg, err := config.Parse([]byte("dataset: {path: " + path + "}"))
	require.NoError(t, err)
	d, err := loadData(cfg)
	require.NoError(t, err)
	assert.Equal(t, 150, d.Len(), "synthetic sample count must not cap CSV rows")

	cfg, err = config.Parse([]byte("dataset: {path: " + path + ", max_rows: 120}"))
	require.NoError(t, err)
	d, err = loadData(cfg)
	require.NoError(t, err)
	assert.Equal(t, 120, d.Len())
}

func TestTrain_InvalidOverride(t *testing.T) {
	_, _, err := execute(t, "train", "--epochs", "-1")
	assert.Error(t, err)

	_, _, err = execute(t, "train", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
