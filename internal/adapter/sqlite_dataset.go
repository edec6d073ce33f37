package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	sqliteOptions = "?_txlock=exclusive&_timeout=30000"

	// DictionaryTable holds value labels and missing-value declarations for
	// the tables of a SQLite dataset.
	DictionaryTable = "tabanon_dictionary"

	scanBatchSize = 1000
)

// ErrTableRequired is returned when a SQLite dataset is opened without a table name.
var ErrTableRequired = errors.New("a table name is required for SQLite datasets")

var declaredWidth = regexp.MustCompile(`\(\s*(\d+)\s*\)`)

// SQLiteDataset is one table of a SQLite database. Every change runs in a
// single transaction that Commit commits and Close rolls back.
type SQLiteDataset struct {
	db       *sql.DB
	tx       *sql.Tx
	path     m.Path
	table    string
	maxName  int
	columns  []m.Column
	original []string
	cleared  map[int]bool
	hasDict  bool
}

// OpenSQLiteDataset opens spec.Table inside the database at spec.Path.
func OpenSQLiteDataset(ctx context.Context, fs FileSystem, spec DatasetSpec) (*SQLiteDataset, error) {
	if strings.TrimSpace(spec.Table) == "" {
		return nil, ErrTableRequired
	}

	// The driver creates missing files, which would hide a mistyped path.
	exists, err := fs.Exists(ctx, spec.Path)
	if err != nil {
		slog.Error("Failed to stat SQLite dataset", "path", spec.Path, "error", err)
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	if !exists {
		slog.Error("SQLite dataset not found", "path", spec.Path)
		return nil, fmt.Errorf("failed to open dataset %s: %w", spec.Path, os.ErrNotExist)
	}

	db, err := sql.Open("sqlite3", string(spec.Path)+sqliteOptions)
	if err != nil {
		slog.Error("Failed to open SQLite dataset", "path", spec.Path, "error", err)
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	db.SetMaxOpenConns(1)

	ds := &SQLiteDataset{
		db:      db,
		path:    spec.Path,
		table:   spec.Table,
		maxName: spec.MaxNameLength,
		cleared: make(map[int]bool),
	}

	if err := ds.load(ctx, spec.TextWidth); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close SQLite dataset", "path", spec.Path, "error", closeErr)
		}

		return nil, err
	}

	slog.Info("Opened SQLite dataset", "path", spec.Path, "table", spec.Table, "columns", len(ds.columns))

	return ds, nil
}

// Name implements Dataset.
func (d *SQLiteDataset) Name() string { return string(d.path) + "#" + d.table }

// MaxNameLength implements Dataset.
func (d *SQLiteDataset) MaxNameLength() int { return d.maxName }

// Columns implements Dataset.
func (d *SQLiteDataset) Columns(_ context.Context) ([]m.Column, error) {
	columns := make([]m.Column, len(d.columns))
	copy(columns, d.columns)

	return columns, nil
}

// RowCount implements Dataset.
func (d *SQLiteDataset) RowCount(ctx context.Context) (int, error) {
	var count int

	query := "SELECT COUNT(*) FROM " + quoteIdent(d.table)
	if err := d.queryRow(ctx, query).Scan(&count); err != nil {
		return -1, fmt.Errorf("failed to count rows: %w", err)
	}

	return count, nil
}

// Scan implements Dataset. Rows are read in rowid order, a batch at a time.
func (d *SQLiteDataset) Scan(ctx context.Context, columns []int, fn RowFunc) (int, error) {
	if len(columns) == 0 {
		return 0, nil
	}

	names := make([]string, len(columns))
	assignments := make([]string, len(columns))

	for i, index := range columns {
		if err := checkColumnIndex(d.columns, index); err != nil {
			return 0, err
		}

		names[i] = quoteIdent(d.original[index])
		assignments[i] = names[i] + " = ?"
	}

	tx, err := d.begin(ctx)
	if err != nil {
		return 0, err
	}

	selectQuery := fmt.Sprintf("SELECT rowid, %s FROM %s WHERE rowid > ? ORDER BY rowid LIMIT %d",
		strings.Join(names, ", "), quoteIdent(d.table), scanBatchSize)

	update, err := tx.PrepareContext(ctx, fmt.Sprintf("UPDATE %s SET %s WHERE rowid = ?",
		quoteIdent(d.table), strings.Join(assignments, ", ")))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare update: %w", err)
	}

	defer func() {
		if err := update.Close(); err != nil {
			slog.Error("Failed to close update statement", "table", d.table, "error", err)
		}
	}()

	var (
		lastRowID int64
		rows      int
	)

	for {
		batch, err := d.readBatch(ctx, tx, selectQuery, lastRowID, columns)
		if err != nil {
			return rows, err
		}

		if len(batch) == 0 {
			return rows, nil
		}

		for _, record := range batch {
			rows++

			replaced, err := fn(rows, record.values)
			if err != nil {
				return rows, err
			}

			args := make([]any, 0, len(columns)+1)
			for i, index := range columns {
				args = append(args, sqlValue(d.columns[index].Kind, replaced[i]))
			}

			args = append(args, record.rowID)
			if _, err := update.ExecContext(ctx, args...); err != nil {
				slog.Error("Failed to update row", "table", d.table, "rowid", record.rowID, "error", err)
				return rows, fmt.Errorf("failed to update row %d: %w", rows, err)
			}

			lastRowID = record.rowID
		}

		slog.Debug("Updated batch", "table", d.table, "rows", rows)
	}
}

// ClearMetadata implements Dataset. The dictionary rows are removed on Commit.
func (d *SQLiteDataset) ClearMetadata(_ context.Context, column int) error {
	if err := checkColumnIndex(d.columns, column); err != nil {
		return err
	}

	d.columns[column].ValueLabels = nil
	d.columns[column].MissingValues = nil
	d.cleared[column] = true

	return nil
}

// RenameColumn implements Dataset. The ALTER TABLE statement runs on Commit.
func (d *SQLiteDataset) RenameColumn(_ context.Context, column int, name string) error {
	if err := checkColumnIndex(d.columns, column); err != nil {
		return err
	}

	d.columns[column].Name = name

	return nil
}

// Commit implements Dataset.
func (d *SQLiteDataset) Commit(ctx context.Context) error {
	tx, err := d.begin(ctx)
	if err != nil {
		return err
	}

	if err := d.applyMetadata(ctx, tx); err != nil {
		return err
	}

	for i, column := range d.columns {
		if column.Name == d.original[i] {
			continue
		}

		query := fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s",
			quoteIdent(d.table), quoteIdent(d.original[i]), quoteIdent(column.Name))
		if _, err := tx.ExecContext(ctx, query); err != nil {
			slog.Error("Failed to rename column", "table", d.table, "from", d.original[i], "to", column.Name, "error", err)
			return fmt.Errorf("failed to rename column %q: %w", d.original[i], err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit SQLite dataset", "path", d.path, "error", err)
		return fmt.Errorf("failed to commit dataset: %w", err)
	}

	d.tx = nil

	for i := range d.columns {
		d.original[i] = d.columns[i].Name
	}

	clear(d.cleared)

	slog.Info("Committed SQLite dataset", "path", d.path, "table", d.table)

	return nil
}

// Close implements Dataset.
func (d *SQLiteDataset) Close() error {
	var errs []error

	if d.tx != nil {
		if err := d.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, fmt.Errorf("failed to roll back: %w", err))
		}

		d.tx = nil
	}

	if err := d.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}

	return errors.Join(errs...)
}

func (d *SQLiteDataset) load(ctx context.Context, textWidth int) error {
	var name string

	err := d.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", d.table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("table %q not found in %s", d.table, d.path)
	}

	if err != nil {
		return fmt.Errorf("failed to look up table: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(d.table)+")")
	if err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var (
			cid      int
			colName  string
			declType string
			notNull  int
			defValue sql.NullString
			pk       int
		)

		if err := rows.Scan(&cid, &colName, &declType, &notNull, &defValue, &pk); err != nil {
			return fmt.Errorf("failed to read table info: %w", err)
		}

		d.columns = append(d.columns, columnFromDecl(len(d.columns), colName, declType, textWidth))
		d.original = append(d.original, colName)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table info: %w", err)
	}

	return d.loadDictionary(ctx)
}

func (d *SQLiteDataset) loadDictionary(ctx context.Context) error {
	var name string

	err := d.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", DictionaryTable).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to look up dictionary table: %w", err)
	}

	d.hasDict = true

	rows, err := d.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT column_name, value_labels, missing_values FROM %s WHERE table_name = ?", DictionaryTable), d.table)
	if err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}

	defer rows.Close()

	byName := make(map[string]int, len(d.columns))
	for i, column := range d.columns {
		byName[column.Name] = i
	}

	for rows.Next() {
		var (
			colName       string
			labels        sql.NullString
			missingValues sql.NullString
		)

		if err := rows.Scan(&colName, &labels, &missingValues); err != nil {
			return fmt.Errorf("failed to read dictionary: %w", err)
		}

		index, ok := byName[colName]
		if !ok {
			slog.Warn("Dictionary entry for unknown column", "table", d.table, "column", colName)
			continue
		}

		column := &d.columns[index]
		if labels.Valid && labels.String != "" {
			if err := json.Unmarshal([]byte(labels.String), &column.ValueLabels); err != nil {
				return fmt.Errorf("invalid value labels for column %q: %w", colName, err)
			}
		}

		if missingValues.Valid && missingValues.String != "" {
			if err := json.Unmarshal([]byte(missingValues.String), &column.MissingValues); err != nil {
				return fmt.Errorf("invalid missing values for column %q: %w", colName, err)
			}
		}
	}

	return rows.Err()
}

func (d *SQLiteDataset) applyMetadata(ctx context.Context, tx *sql.Tx) error {
	if !d.hasDict {
		return nil
	}

	for index := range d.cleared {
		_, err := tx.ExecContext(ctx, fmt.Sprintf(
			"DELETE FROM %s WHERE table_name = ? AND column_name = ?", DictionaryTable), d.table, d.original[index])
		if err != nil {
			return fmt.Errorf("failed to clear dictionary for column %q: %w", d.original[index], err)
		}
	}

	for i, column := range d.columns {
		if column.Name == d.original[i] {
			continue
		}

		_, err := tx.ExecContext(ctx, fmt.Sprintf(
			"UPDATE %s SET column_name = ? WHERE table_name = ? AND column_name = ?", DictionaryTable),
			column.Name, d.table, d.original[i])
		if err != nil {
			return fmt.Errorf("failed to rename dictionary entry for column %q: %w", d.original[i], err)
		}
	}

	return nil
}

type sqliteRecord struct {
	rowID  int64
	values []m.Value
}

func (d *SQLiteDataset) readBatch(ctx context.Context, tx *sql.Tx, query string, after int64, columns []int) ([]sqliteRecord, error) {
	rows, err := tx.QueryContext(ctx, query, after)
	if err != nil {
		slog.Error("Failed to read rows", "table", d.table, "error", err)
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	defer rows.Close()

	var batch []sqliteRecord

	for rows.Next() {
		raw := make([]any, len(columns))
		dest := make([]any, len(columns)+1)

		var record sqliteRecord

		dest[0] = &record.rowID
		for i := range raw {
			dest[i+1] = &raw[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record.values = make([]m.Value, len(columns))
		for i, index := range columns {
			value, err := cellValue(d.columns[index].Kind, raw[i])
			if err != nil {
				return nil, fmt.Errorf("rowid %d, column %q: %w", record.rowID, d.columns[index].Name, err)
			}

			record.values[i] = value
		}

		batch = append(batch, record)
	}

	return batch, rows.Err()
}

func (d *SQLiteDataset) begin(ctx context.Context) (*sql.Tx, error) {
	if d.tx != nil {
		return d.tx, nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("Failed to begin transaction", "path", d.path, "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	d.tx = tx

	return tx, nil
}

func (d *SQLiteDataset) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	if d.tx != nil {
		return d.tx.QueryRowContext(ctx, query, args...)
	}

	return d.db.QueryRowContext(ctx, query, args...)
}

// columnFromDecl applies SQLite's affinity rules to a declared column type.
func columnFromDecl(index int, name, declType string, textWidth int) m.Column {
	column := m.Column{Index: index, Name: name, Kind: m.KindNumeric}

	decl := strings.ToUpper(declType)
	switch {
	case strings.Contains(decl, "INT"):
		// INTEGER affinity wins over the text checks below.
	case strings.Contains(decl, "CHAR"), strings.Contains(decl, "CLOB"), strings.Contains(decl, "TEXT"),
		strings.Contains(decl, "BLOB"), decl == "":
		column.Kind = m.KindText
	}

	if column.IsText() {
		column.Width = textWidth
		if match := declaredWidth.FindStringSubmatch(decl); match != nil {
			if width, err := strconv.Atoi(match[1]); err == nil && width > 0 {
				column.Width = width
			}
		}

		if column.Width <= 0 {
			column.Width = DefaultTextWidth
		}
	}

	return column
}

func cellValue(kind m.Kind, raw any) (m.Value, error) {
	switch v := raw.(type) {
	case nil:
		return m.Missing(), nil
	case int64:
		if kind == m.KindNumeric {
			return m.Integer(v)
		}

		return m.Text(strconv.FormatInt(v, 10)), nil
	case float64:
		if kind == m.KindNumeric {
			return m.Numeric(v), nil
		}

		return m.Text(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case []byte:
		return m.ParseValue(kind, string(v))
	case string:
		return m.ParseValue(kind, v)
	default:
		return m.Value{}, fmt.Errorf("unsupported cell type %T", raw)
	}
}

// sqlValue converts a substitute for binding. Integral numbers bind as INTEGER.
func sqlValue(kind m.Kind, v m.Value) any {
	if v.Missing {
		return nil
	}

	if kind == m.KindText {
		return v.Str
	}

	if v.Num == math.Trunc(v.Num) && math.Abs(v.Num) < 1<<63 {
		return int64(v.Num)
	}

	return v.Num
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
