package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func TestColumnIndex(t *testing.T) {
	d := &Dataset{Columns: []string{"Country", "Value"}}

	idx, ok := d.ColumnIndex("Value")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = d.ColumnIndex("Nation")
	assert.False(t, ok)
}

func TestColumn(t *testing.T) {
	d := &Dataset{
		Columns: []string{"Country", "Value"},
		Rows: [][]*string{
			{sp("Turkey"), sp("1")},
			{nil, sp("2")},
		},
	}

	col, ok := d.Column("Country")
	require.True(t, ok)
	require.Len(t, col, 2)
	assert.Equal(t, "Turkey", *col[0])
	assert.Nil(t, col[1])

	_, ok = d.Column("Nation")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	d := &Dataset{
		Name:    "orig",
		Columns: []string{"Country"},
		Rows:    [][]*string{{sp("Turkey")}},
	}

	c := d.Clone()
	c.Rows[0][0] = sp("Egypt")
	c.Columns[0] = "Nation"

	assert.Equal(t, "Turkey", *d.Rows[0][0])
	assert.Equal(t, "Country", d.Columns[0])
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fertility.csv")
	content := "Country,Rate\nTurkey,1.9\nEgypt,2.9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, "fertility", d.Name)
	assert.Equal(t, []string{"Country", "Rate"}, d.Columns)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, "Turkey", *d.Rows[0][0])
	assert.Equal(t, "2.9", *d.Rows[1][1])
}

func TestReadCSVErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadCSV(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = ReadCSV(empty)
	assert.Error(t, err)

	ragged := filepath.Join(dir, "ragged.csv")
	require.NoError(t, os.WriteFile(ragged, []byte("A,B\n1\n"), 0644))
	_, err = ReadCSV(ragged)
	assert.Error(t, err)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	d := &Dataset{
		Name:    "out",
		Columns: []string{"Country", "Rate"},
		Rows: [][]*string{
			{sp("Turkey"), sp("1.9")},
			{sp("Laos"), nil},
		},
	}
	require.NoError(t, WriteCSV(d, path))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, d.Columns, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Turkey", *got.Rows[0][0])
	// Nil cells round-trip as empty strings; CSV has no null.
	assert.Equal(t, "", *got.Rows[1][1])
}
