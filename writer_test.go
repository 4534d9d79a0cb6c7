package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJsonEncodesValue(t *testing.T) {
	buf, err := writeJson(map[string]any{"a": 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, buf.String())
}

func TestWriteCsvOrdersValuesByColumns(t *testing.T) {
	buf, err := writeCsv(map[string]any{"b": "x", "a": 1}, []string{"a", "b"}, "")
	require.NoError(t, err)
	require.Equal(t, "1,x\n", buf.String())
}

func TestWriteCsvUsesCustomSeparator(t *testing.T) {
	buf, err := writeCsv(map[string]any{"b": "x", "a": 1}, []string{"a", "b"}, ";")
	require.NoError(t, err)
	require.Equal(t, "1;x\n", buf.String())
}

func TestWriteCsvLeavesNilValuesEmpty(t *testing.T) {
	buf, err := writeCsv(map[string]any{"a": nil, "b": "x"}, []string{"a", "b"}, "")
	require.NoError(t, err)
	require.Equal(t, ",x\n", buf.String())
}

func TestWriteCsvRejectsNonObject(t *testing.T) {
	_, err := writeCsv(42, []string{"a"}, "")
	require.Error(t, err)
}
