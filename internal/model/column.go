// Package model defines the data structures shared by the anonymizer layers.
package model

// Column describes a dataset column. Width is the declared character width
// of text columns and is ignored for numeric ones.
type Column struct {
	Index         int
	Name          string
	Kind          Kind
	Width         int
	ValueLabels   map[string]string
	MissingValues []string
}

// IsText reports whether the column stores strings.
func (c Column) IsText() bool {
	return c.Kind == KindText
}

// HasMetadata reports whether value labels or missing-value declarations are set.
func (c Column) HasMetadata() bool {
	return len(c.ValueLabels) > 0 || len(c.MissingValues) > 0
}

// Rename records a column name change applied at the end of a run.
type Rename struct {
	From string
	To   string
}
