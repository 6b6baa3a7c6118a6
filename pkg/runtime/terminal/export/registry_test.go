package export

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Create(t *testing.T) {
	registry := NewDefaultRegistry()

	var buf bytes.Buffer
	reporter, err := registry.Create("json", &buf)
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, reporter)
}

func TestRegistry_UnknownFormat(t *testing.T) {
	registry := NewDefaultRegistry()

	_, err := registry.Create("xml", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
	assert.Contains(t, err.Error(), "json, text")
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register("text", func(w io.Writer) Reporter { return NewTextReporter(w) })
	require.NoError(t, err)

	err = registry.Register("text", func(w io.Writer) Reporter { return NewTextReporter(w) })
	assert.Error(t, err, "duplicate registration must fail")

	assert.Error(t, registry.Register("", nil))
	assert.Equal(t, []string{"text"}, registry.ListFormats())
}
