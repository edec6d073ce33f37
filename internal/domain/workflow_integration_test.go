package domain_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabanon.dev/pkg/tabanon/internal/adapter"
	"tabanon.dev/pkg/tabanon/internal/controller"
	"tabanon.dev/pkg/tabanon/internal/domain"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

func newLocalWorkflow(t *testing.T) (domain.Workflow, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	fs := adapter.NewLocalFileSystem()

	return domain.NewWorkflow(
		adapter.NewLocalDatasetOpener(fs),
		adapter.NewCSVMappingStore(fs),
		controller.NewSimpleUI(cmd),
	), &out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestWorkflow_Anonymize_CSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	dataset := filepath.Join(dir, "survey.csv")
	names := filepath.Join(dir, "names.txt")
	values := filepath.Join(dir, "values.txt")

	writeFile(t, dataset, "id,city,score\n5,Paris,1.5\n7,Lyon,\n5,Paris,3\n")

	wf, out := newLocalWorkflow(t)

	summary, err := wf.Anonymize(ctx, domain.AnonymizeArgs{
		Dataset:    adapter.DatasetSpec{Path: m.Path(dataset)},
		Columns:    []string{"id", "city"},
		Method:     m.MethodSequential,
		NameRoot:   "anon",
		SaveNames:  m.Path(names),
		SaveValues: m.Path(values),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, "anon1,anon2,score\n0,0,1.5\n1,1,\n0,0,3\n", readFile(t, dataset))
	assert.Equal(t, "id = anon1\ncity = anon2\n", readFile(t, names))
	assert.Equal(t, "id\n0,=,5\n1,=,7\ncity\n0,=,Paris\n1,=,Lyon\n", readFile(t, values))
	assert.Contains(t, out.String(), "Processed 3/3 rows")

	// A second dataset reuses the saved substitutes and extends the sequence.
	second := filepath.Join(dir, "followup.csv")
	writeFile(t, second, "city\nCaen\nLyon\n")

	_, err = wf.Anonymize(ctx, domain.AnonymizeArgs{
		Dataset: adapter.DatasetSpec{Path: m.Path(second)},
		Columns: []string{"city"},
		Method:  m.MethodSequential,
		Mapping: m.Path(values),
	})
	require.NoError(t, err)

	assert.Equal(t, "city\n2\n1\n", readFile(t, second))
}

func TestWorkflow_Anonymize_FailureLeavesDatasetUnchanged(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	dataset := filepath.Join(dir, "survey.csv")
	original := "id\n1\n2\n3\n"
	writeFile(t, dataset, original)

	wf, _ := newLocalWorkflow(t)
	seed := uint64(1)

	_, err := wf.Anonymize(ctx, domain.AnonymizeArgs{
		Dataset:   adapter.DatasetSpec{Path: m.Path(dataset)},
		Columns:   []string{"id"},
		Method:    m.MethodRandom,
		MaxRandom: []int64{1},
		OneToOne:  []string{"id"},
		NameRoot:  "anon",
		Seed:      &seed,
	})

	require.Error(t, err)
	assert.True(t, domain.IsMappingExhausted(err))
	assert.Equal(t, original, readFile(t, dataset))
	assert.NoFileExists(t, filepath.Join(dir, "survey.dict.yaml"))
}

func TestWorkflow_View_CSVMappingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "values.txt")

	writeFile(t, path, "age\n0,=,35\n1,=,40\nincome\n")

	wf, out := newLocalWorkflow(t)

	require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Mapping: m.Path(path)}))

	got := out.String()
	assert.Contains(t, got, "age")
	assert.Contains(t, got, "35")
	assert.Contains(t, got, "income")
	assert.Contains(t, got, "(no entries)")
}
