package model

// MappingEntry pairs a substituted value with the original it replaced.
type MappingEntry struct {
	Substitute Value
	Original   Value
}

// MappingTable is the persisted form of one column's substitution table.
type MappingTable struct {
	Column  string
	Kind    Kind
	Method  Method
	Entries []MappingEntry
}

// ColumnSummary reports what a run did to one column.
type ColumnSummary struct {
	Name     string
	NewName  string
	Kind     Kind
	Method   Method
	OneToOne bool
	Distinct int
}

// RunSummary is the outcome of an anonymization run.
type RunSummary struct {
	RunID   string
	Dataset string
	Rows    int
	Columns []ColumnSummary
}
