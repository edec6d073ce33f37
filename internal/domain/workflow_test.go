package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tabanon.dev/pkg/tabanon/internal/adapter"
	adaptermocks "tabanon.dev/pkg/tabanon/internal/adapter/mocks"
	"tabanon.dev/pkg/tabanon/internal/controller"
	controllermocks "tabanon.dev/pkg/tabanon/internal/controller/mocks"
	"tabanon.dev/pkg/tabanon/internal/domain"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

var testColumns = []m.Column{
	{Index: 0, Name: "id", Kind: m.KindNumeric},
	{Index: 1, Name: "city", Kind: m.KindText, Width: 8, ValueLabels: map[string]string{"P": "Paris"}},
	{Index: 2, Name: "score", Kind: m.KindNumeric},
}

type workflowMocks struct {
	opener  *adaptermocks.MockDatasetOpener
	dataset *adaptermocks.MockDataset
	store   *adaptermocks.MockMappingStore
	ui      *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) workflowMocks {
	return workflowMocks{
		opener:  adaptermocks.NewMockDatasetOpener(t),
		dataset: adaptermocks.NewMockDataset(t),
		store:   adaptermocks.NewMockMappingStore(t),
		ui:      controllermocks.NewMockUI(t),
	}
}

func (w workflowMocks) workflow() domain.Workflow {
	return domain.NewWorkflow(w.opener, w.store, w.ui)
}

// expectOpen sets up a dataset with the test columns.
func (w workflowMocks) expectOpen() {
	w.opener.EXPECT().Open(mock.Anything, mock.Anything).Return(w.dataset, nil).Once()
	w.dataset.EXPECT().Name().Return("survey.csv").Maybe()
	w.dataset.EXPECT().Columns(mock.Anything).Return(testColumns, nil).Once()
	w.dataset.EXPECT().Close().Return(nil).Once()
}

// scanRows feeds rows to the RowFunc and records what it returns.
func scanRows(rows [][]m.Value, written *[][]m.Value) func(context.Context, []int, adapter.RowFunc) (int, error) {
	return func(_ context.Context, _ []int, fn adapter.RowFunc) (int, error) {
		for i, row := range rows {
			out, err := fn(i+1, row)
			if err != nil {
				return i, err
			}

			*written = append(*written, out)
		}

		return len(rows), nil
	}
}

func TestWorkflow_Anonymize_Success(t *testing.T) {
	ctx := context.Background()
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	rows := [][]m.Value{
		{m.Numeric(5), m.Text("Paris")},
		{m.Numeric(7), m.Text("Lyon")},
		{m.Numeric(5), m.Text("Paris")},
	}

	var written [][]m.Value

	mocks.dataset.EXPECT().MaxNameLength().Return(64).Once()
	mocks.dataset.EXPECT().RowCount(mock.Anything).Return(3, nil).Once()
	mocks.dataset.EXPECT().Scan(mock.Anything, []int{0, 1}, mock.Anything).RunAndReturn(scanRows(rows, &written)).Once()
	mocks.dataset.EXPECT().ClearMetadata(mock.Anything, 0).Return(nil).Once()
	mocks.dataset.EXPECT().ClearMetadata(mock.Anything, 1).Return(nil).Once()
	mocks.dataset.EXPECT().RenameColumn(mock.Anything, 0, "anon1").Return(nil).Once()
	mocks.dataset.EXPECT().RenameColumn(mock.Anything, 1, "anon2").Return(nil).Once()
	mocks.dataset.EXPECT().Commit(mock.Anything).Return(nil).Once()

	mocks.store.EXPECT().SaveNames(mock.Anything, m.Path("names.txt"), []m.Rename{
		{From: "id", To: "anon1"},
		{From: "city", To: "anon2"},
	}).Return(nil).Once()
	mocks.store.EXPECT().SaveMappings(mock.Anything, m.Path("values.txt"), mock.MatchedBy(func(tables []m.MappingTable) bool {
		return len(tables) == 2 &&
			tables[0].Column == "id" && len(tables[0].Entries) == 2 &&
			tables[1].Column == "city" && len(tables[1].Entries) == 2
	})).Return(nil).Once()

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunStart(mock.Anything, mock.MatchedBy(func(info controller.RunInfo) bool {
		return info.Dataset == "survey.csv" && info.Rows == 3 && info.RunID != ""
	})).Return().Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, 3, 3).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	summary, err := mocks.workflow().Anonymize(ctx, domain.AnonymizeArgs{
		Columns:    []string{"id", "city"},
		Method:     m.MethodSequential,
		ValueRoot:  "ID",
		NameRoot:   "anon",
		SaveNames:  "names.txt",
		SaveValues: "values.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, [][]m.Value{
		{m.Numeric(0), m.Text("ID0")},
		{m.Numeric(1), m.Text("ID1")},
		{m.Numeric(0), m.Text("ID0")},
	}, written)

	assert.Equal(t, 3, summary.Rows)
	require.Len(t, summary.Columns, 2)
	assert.Equal(t, "anon1", summary.Columns[0].NewName)
	assert.Equal(t, 2, summary.Columns[1].Distinct)
}

func TestWorkflow_Anonymize_SeedsFromMappingFile(t *testing.T) {
	ctx := context.Background()
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	var written [][]m.Value

	mocks.dataset.EXPECT().MaxNameLength().Return(64).Once()
	mocks.dataset.EXPECT().RowCount(mock.Anything).Return(0, errors.New("unknown")).Once()
	mocks.dataset.EXPECT().Scan(mock.Anything, []int{1}, mock.Anything).
		RunAndReturn(scanRows([][]m.Value{{m.Text("Caen")}, {m.Text("Lyon")}}, &written)).Once()
	mocks.dataset.EXPECT().ClearMetadata(mock.Anything, 1).Return(nil).Once()
	mocks.dataset.EXPECT().Commit(mock.Anything).Return(nil).Once()

	mocks.store.EXPECT().LoadMappings(mock.Anything, m.Path("old.txt"), map[string]m.Kind{"city": m.KindText}).
		Return([]m.MappingTable{{
			Column:  "city",
			Kind:    m.KindText,
			Entries: []m.MappingEntry{{Substitute: m.Text("C4"), Original: m.Text("Lyon")}},
		}}, nil).Once()

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunStart(mock.Anything, mock.MatchedBy(func(info controller.RunInfo) bool {
		return info.Rows == -1
	})).Return().Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, 2, -1).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	_, err := mocks.workflow().Anonymize(ctx, domain.AnonymizeArgs{
		Columns:   []string{"city"},
		Method:    m.MethodSequential,
		ValueRoot: "C",
		Mapping:   "old.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, [][]m.Value{{m.Text("C5")}, {m.Text("C4")}}, written)
}

func TestWorkflow_Anonymize_InvalidOptions(t *testing.T) {
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	_, err := mocks.workflow().Anonymize(context.Background(), domain.AnonymizeArgs{
		Columns: []string{"id", "missing"},
		Method:  m.MethodSequential,
	})

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	mocks.dataset.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestWorkflow_Anonymize_NameTooLong(t *testing.T) {
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	mocks.dataset.EXPECT().MaxNameLength().Return(8).Once()

	_, err := mocks.workflow().Anonymize(context.Background(), domain.AnonymizeArgs{
		Columns:  []string{"id"},
		Method:   m.MethodSequential,
		NameRoot: "anonymized",
	})

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestWorkflow_Anonymize_ScanErrorLeavesDatasetUncommitted(t *testing.T) {
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	var written [][]m.Value

	mocks.dataset.EXPECT().MaxNameLength().Return(64).Once()
	mocks.dataset.EXPECT().RowCount(mock.Anything).Return(3, nil).Once()
	mocks.dataset.EXPECT().Scan(mock.Anything, []int{0}, mock.Anything).
		RunAndReturn(scanRows([][]m.Value{{m.Numeric(1)}, {m.Numeric(2)}, {m.Numeric(3)}}, &written)).Once()

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunStart(mock.Anything, mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	seed := uint64(7)

	_, err := mocks.workflow().Anonymize(context.Background(), domain.AnonymizeArgs{
		Columns:   []string{"id"},
		Method:    m.MethodRandom,
		MaxRandom: []int64{1},
		OneToOne:  []string{"id"},
		Seed:      &seed,
	})

	require.Error(t, err)
	assert.True(t, domain.IsMappingExhausted(err))
	assert.Len(t, written, 2)
	mocks.dataset.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestWorkflow_Anonymize_RetriesOpen(t *testing.T) {
	mocks := newWorkflowMocks(t)

	openErr := errors.New("locked")
	mocks.opener.EXPECT().Open(mock.Anything, mock.Anything).Return(nil, openErr).Twice()

	_, err := mocks.workflow().Anonymize(context.Background(), domain.AnonymizeArgs{
		Dataset: adapter.DatasetSpec{Path: "survey.csv"},
		Columns: []string{"id"},
	})

	require.ErrorIs(t, err, openErr)
}

func TestWorkflow_Anonymize_StartError(t *testing.T) {
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	startErr := errors.New("start failed")

	mocks.dataset.EXPECT().MaxNameLength().Return(64).Once()
	mocks.dataset.EXPECT().RowCount(mock.Anything).Return(1, nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(startErr).Once()

	_, err := mocks.workflow().Anonymize(context.Background(), domain.AnonymizeArgs{
		Columns: []string{"id"},
		Method:  m.MethodSequential,
	})

	require.ErrorIs(t, err, startErr)
}

func TestWorkflow_Columns(t *testing.T) {
	mocks := newWorkflowMocks(t)
	mocks.expectOpen()

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayColumns(mock.Anything, "survey.csv", testColumns).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	err := mocks.workflow().Columns(context.Background(), domain.ColumnsArgs{
		Dataset: adapter.DatasetSpec{Path: "survey.csv"},
	})

	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	mocks := newWorkflowMocks(t)

	tables := []m.MappingTable{{Column: "age", Entries: []m.MappingEntry{{Substitute: m.Text("0"), Original: m.Text("35")}}}}

	mocks.store.EXPECT().LoadMappings(mock.Anything, m.Path("values.txt"), map[string]m.Kind(nil)).Return(tables, nil).Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayMappings(mock.Anything, m.Path("values.txt"), tables).Return(nil).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	err := mocks.workflow().View(context.Background(), domain.ViewArgs{Mapping: "values.txt"})

	require.NoError(t, err)
}

func TestWorkflow_View_FormatError(t *testing.T) {
	mocks := newWorkflowMocks(t)

	mocks.store.EXPECT().LoadMappings(mock.Anything, m.Path("bad.txt"), mock.Anything).
		Return(nil, adapter.ErrMappingFormat).Once()

	err := mocks.workflow().View(context.Background(), domain.ViewArgs{Mapping: "bad.txt"})

	require.Error(t, err)
	assert.True(t, domain.IsMappingFormatError(err))
}
