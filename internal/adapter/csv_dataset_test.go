package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const surveyCSV = "id,city,score\n5,Paris,1.5\n7,Lyon,\n5,Paris,3\n"

const surveyDict = `columns:
  - name: city
    kind: text
    width: 10
    value_labels:
      Paris: capital
    missing_values: ["?"]
`

func newSurvey(t *testing.T, withDict bool) (string, *CSVDataset) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "survey.csv")
	writeTestFile(t, path, surveyCSV)

	if withDict {
		writeTestFile(t, filepath.Join(dir, "survey.dict.yaml"), surveyDict)
	}

	opener := NewLocalDatasetOpener(NewLocalFileSystem())
	ds, err := opener.Open(context.Background(), DatasetSpec{Path: m.Path(path)})
	require.NoError(t, err)

	csvDS, ok := ds.(*CSVDataset)
	require.True(t, ok)

	t.Cleanup(func() { _ = csvDS.Close() })

	return path, csvDS
}

func TestCSVDataset_Columns(t *testing.T) {
	ctx := context.Background()

	t.Run("infers kinds without a dictionary", func(t *testing.T) {
		_, ds := newSurvey(t, false)

		columns, err := ds.Columns(ctx)
		require.NoError(t, err)
		require.Len(t, columns, 3)

		assert.Equal(t, m.Column{Index: 0, Name: "id", Kind: m.KindNumeric}, columns[0])
		assert.Equal(t, m.Column{Index: 1, Name: "city", Kind: m.KindText, Width: 5}, columns[1])
		assert.Equal(t, m.KindNumeric, columns[2].Kind)

		rows, err := ds.RowCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, rows)
		assert.Equal(t, DefaultMaxNameLength, ds.MaxNameLength())
	})

	t.Run("dictionary overrides inference", func(t *testing.T) {
		_, ds := newSurvey(t, true)

		columns, err := ds.Columns(ctx)
		require.NoError(t, err)

		city := columns[1]
		assert.Equal(t, 10, city.Width)
		assert.Equal(t, map[string]string{"Paris": "capital"}, city.ValueLabels)
		assert.Equal(t, []string{"?"}, city.MissingValues)
		assert.True(t, city.HasMetadata())
	})

	t.Run("columns are copies", func(t *testing.T) {
		_, ds := newSurvey(t, false)

		columns, err := ds.Columns(ctx)
		require.NoError(t, err)
		columns[0].Name = "changed"

		again, err := ds.Columns(ctx)
		require.NoError(t, err)
		assert.Equal(t, "id", again[0].Name)
	})
}

func TestCSVDataset_ScanAndCommit(t *testing.T) {
	ctx := context.Background()
	path, ds := newSurvey(t, true)

	var seen [][]m.Value

	rows, err := ds.Scan(ctx, []int{1, 0}, func(_ int, values []m.Value) ([]m.Value, error) {
		seen = append(seen, append([]m.Value(nil), values...))

		return []m.Value{m.Text("X" + values[0].Str), m.Numeric(values[1].Num + 100)}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, []m.Value{m.Text("Paris"), m.Numeric(5)}, seen[0])
	assert.Equal(t, []m.Value{m.Text("Lyon"), m.Numeric(7)}, seen[1])

	// Nothing reaches the file before Commit.
	assert.Equal(t, surveyCSV, readTestFile(t, path))

	require.NoError(t, ds.ClearMetadata(ctx, 1))
	require.NoError(t, ds.RenameColumn(ctx, 0, "v1"))
	require.NoError(t, ds.Commit(ctx))

	assert.Equal(t, "v1,city,score\n105,XParis,1.5\n107,XLyon,\n105,XParis,3\n", readTestFile(t, path))

	dict, err := loadDictionary(ctx, NewLocalFileSystem(), DictionaryPath(m.Path(path)))
	require.NoError(t, err)
	require.Contains(t, dict, "city")
	assert.Empty(t, dict["city"].ValueLabels)
	assert.Empty(t, dict["city"].MissingValues)
	assert.Equal(t, 10, dict["city"].Width)
	assert.Equal(t, "numeric", dict["v1"].Kind)
}

func TestCSVDataset_CommitWithoutScanRewritesHeader(t *testing.T) {
	ctx := context.Background()
	path, ds := newSurvey(t, false)

	require.NoError(t, ds.RenameColumn(ctx, 2, "v1"))
	require.NoError(t, ds.Commit(ctx))

	assert.Equal(t, strings.Replace(surveyCSV, "score", "v1", 1), readTestFile(t, path))
}

func TestCSVDataset_FailedScanLeavesFileUntouched(t *testing.T) {
	ctx := context.Background()
	path, ds := newSurvey(t, false)

	boom := errors.New("boom")
	rows, err := ds.Scan(ctx, []int{0}, func(row int, values []m.Value) ([]m.Value, error) {
		if row == 2 {
			return nil, boom
		}

		return values, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rows)

	require.NoError(t, ds.Close())
	assert.Equal(t, surveyCSV, readTestFile(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "spill file should be removed")
}

func TestCSVDataset_LargeIntegers(t *testing.T) {
	ctx := context.Background()
	fs := NewLocalFileSystem()
	content := "id,n\n9007199254740992,1\n9007199254740993,2\n"

	t.Run("inferred as text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.csv")
		writeTestFile(t, path, content)

		ds, err := OpenCSVDataset(ctx, fs, DatasetSpec{Path: m.Path(path)})
		require.NoError(t, err)
		defer ds.Close()

		columns, err := ds.Columns(ctx)
		require.NoError(t, err)
		assert.Equal(t, m.KindText, columns[0].Kind)
		assert.Equal(t, 16, columns[0].Width)
		assert.Equal(t, m.KindNumeric, columns[1].Kind)

		var seen []m.Value

		_, err = ds.Scan(ctx, []int{0}, func(_ int, values []m.Value) ([]m.Value, error) {
			seen = append(seen, values[0])
			return values, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []m.Value{m.Text("9007199254740992"), m.Text("9007199254740993")}, seen)
	})

	t.Run("declared numeric fails with row and column", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "events.csv")
		writeTestFile(t, path, content)
		writeTestFile(t, filepath.Join(dir, "events.dict.yaml"), "columns:\n  - name: id\n    kind: numeric\n")

		ds, err := OpenCSVDataset(ctx, fs, DatasetSpec{Path: m.Path(path)})
		require.NoError(t, err)
		defer ds.Close()

		_, err = ds.Scan(ctx, []int{0}, func(_ int, values []m.Value) ([]m.Value, error) { return values, nil })
		require.ErrorIs(t, err, m.ErrInexactInteger)
		assert.Contains(t, err.Error(), `row 2, column "id"`)
		assert.Equal(t, content, readTestFile(t, path))
	})
}

func TestCSVDataset_Errors(t *testing.T) {
	ctx := context.Background()
	fs := NewLocalFileSystem()

	t.Run("declared numeric column with text cells", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "survey.csv")
		writeTestFile(t, path, surveyCSV)
		writeTestFile(t, filepath.Join(dir, "custom.yaml"), "columns:\n  - name: city\n    kind: numeric\n")

		ds, err := OpenCSVDataset(ctx, fs, DatasetSpec{Path: m.Path(path), Dictionary: m.Path(filepath.Join(dir, "custom.yaml"))})
		require.NoError(t, err)
		defer ds.Close()

		_, err = ds.Scan(ctx, []int{1}, func(_ int, values []m.Value) ([]m.Value, error) { return values, nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), `column "city"`)
	})

	t.Run("unknown kind in dictionary", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "survey.csv")
		writeTestFile(t, path, surveyCSV)
		writeTestFile(t, filepath.Join(dir, "survey.dict.yaml"), "columns:\n  - name: city\n    kind: date\n")

		_, err := OpenCSVDataset(ctx, fs, DatasetSpec{Path: m.Path(path)})
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		writeTestFile(t, path, "")

		_, err := OpenCSVDataset(ctx, fs, DatasetSpec{Path: m.Path(path)})
		require.Error(t, err)
	})

	t.Run("column index out of range", func(t *testing.T) {
		_, ds := newSurvey(t, false)

		_, err := ds.Scan(ctx, []int{3}, func(_ int, values []m.Value) ([]m.Value, error) { return values, nil })
		require.Error(t, err)
		require.Error(t, ds.RenameColumn(ctx, -1, "x"))
		require.Error(t, ds.ClearMetadata(ctx, 9))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewLocalDatasetOpener(fs).Open(ctx, DatasetSpec{Path: "survey.sav"})
		require.ErrorIs(t, err, ErrUnsupportedDataset)
	})
}
