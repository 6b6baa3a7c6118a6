package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runColumns(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewColumnsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestColumnsCmd_ListsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.csv")
	content := "produto,quantidade,preco_unitario,data_venda,vendedor\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runColumns(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "produto (required)")
	assert.Contains(t, out, "quantidade (required)")
	assert.Contains(t, out, "preco_unitario (required)")
	assert.Contains(t, out, "data_venda (date)")
	assert.Contains(t, out, "vendedor\n")
}

func TestColumnsCmd_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.csv")
	require.NoError(t, os.WriteFile(path, []byte("produto,valor\n"), 0o644))

	_, err := runColumns(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}
