// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/protein-annotate/pkg/types"
)

const notFoundMsg = "HTTP Error: 404 Client Error: Not Found for url: https://rest.uniprot.org/uniprotkb/Q9UNKNOWN.json"

func sampleRows() []types.OutputRow {
	return Rows(
		[]string{"P12345", "Q9UNKNOWN", "P12345"},
		[]types.LookupResult{
			types.Found("Aspartate aminotransferase, mitochondrial", "Catalyzes transamination, with a comma."),
			types.Failed(notFoundMsg),
			types.Found("Aspartate aminotransferase, mitochondrial", "Catalyzes transamination, with a comma."),
		},
	)
}

func TestRows(t *testing.T) {
	rows := sampleRows()
	require.Len(t, rows, 3)

	for i, r := range rows {
		assert.Equal(t, i, r.Index)
	}
	assert.Equal(t, "P12345", rows[0].Identifier)
	assert.False(t, rows[0].Failed)

	assert.Equal(t, "Q9UNKNOWN", rows[1].Identifier)
	assert.Equal(t, notFoundMsg, rows[1].Name)
	assert.Equal(t, notFoundMsg, rows[1].Activity)
	assert.True(t, rows[1].Failed)

	assert.Equal(t, rows[0].Name, rows[2].Name, "duplicates are rendered independently")
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, types.DefaultHeader, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "index,uniprot_id,type,activity\n" +
		`0,P12345,"Aspartate aminotransferase, mitochondrial","Catalyzes transamination, with a comma."` + "\n" +
		"1,Q9UNKNOWN," + notFoundMsg + "," + notFoundMsg + "\n" +
		`2,P12345,"Aspartate aminotransferase, mitochondrial","Catalyzes transamination, with a comma."` + "\n"
	assert.Equal(t, want, string(data))
}

func TestWriteCSVTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, nil, sampleRows()))

	short := Rows([]string{"P69905"}, []types.LookupResult{types.Found("Hemoglobin subunit alpha", "Oxygen transport.")})
	require.NoError(t, WriteCSV(path, nil, short))

	header, rows, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultHeader, header)
	require.Len(t, rows, 1, "no stale rows from the first run")
	assert.Equal(t, "P69905", rows[0].Identifier)
}

func TestWriteCSVCustomHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	header := []string{"#", "accession", "name", "function"}
	require.NoError(t, WriteCSV(path, header, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#,accession,name,function\n", string(data))
}

func TestWriteUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	err := WriteCSV(path, nil, sampleRows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, types.FormatJSON, nil, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []types.OutputRow
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleRows(), got)
	assert.Contains(t, string(data), `"uniprot_id": "Q9UNKNOWN"`)
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Write(path, types.FormatYAML, nil, sampleRows()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []types.OutputRow
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sampleRows(), got)
}

func TestWriteEmptyJSON(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EncodeJSON(&b, nil))
	assert.Equal(t, "[]\n", b.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	err := Write(path, "xml", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestReadCSVErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := ReadCSV(filepath.Join(dir, "nope.csv"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, _, err = ReadCSV(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file is empty")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("index,uniprot_id,type,activity\nx,P1,a,b\n"), 0o644))
	_, _, err = ReadCSV(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid index")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(nil, sampleRows(), 0)
	assert.Contains(t, out, "UNIPROT_ID")
	assert.Contains(t, out, "Q9UNKNOWN")
	assert.Contains(t, out, "╭")
}
