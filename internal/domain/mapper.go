package domain

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	// DefaultMaxRandom is the random-method bound used when none is configured.
	DefaultMaxRandom int64 = 9999999

	// maxRandomDraw caps every draw regardless of the configured bound.
	maxRandomDraw int64 = 1<<56 - 1

	// maxTextDigits keeps 10^n - 1 inside int64.
	maxTextDigits = 18
)

var trailingDigits = regexp.MustCompile(`\d+$`)

// MapperConfig holds the per-column options a ValueMapper is built from.
type MapperConfig struct {
	Method    m.Method
	ValueRoot string
	MaxRandom int64
	OneToOne  bool
	Offset    *float64
	Scale     *float64
}

// ValueMapper owns the substitution state of one column: the memo table,
// the sequence counter and, for one-to-one columns, the set of issued values.
type ValueMapper struct {
	column    m.Column
	method    m.Method
	root      string
	maxRandom int64
	oneToOne  bool
	offset    float64
	scale     float64

	table  map[m.Value]m.Value
	order  []m.Value
	seq    int64
	issued map[m.Value]struct{}
	rng    RandomSource
}

// NewValueMapper validates cfg against the column and returns a mapper with an
// empty table. The transform method is replaced by sequential on text columns.
func NewValueMapper(column m.Column, cfg MapperConfig, rng RandomSource) (*ValueMapper, error) {
	if cfg.Method == m.MethodTransform && (cfg.Offset == nil || cfg.Scale == nil) {
		return nil, NewConfigurationError("transform method requires both offset and scale")
	}

	if cfg.Method == m.MethodRandom && cfg.MaxRandom <= 0 {
		return nil, NewConfigurationError("random bound for column %q must be positive, got %d", column.Name, cfg.MaxRandom)
	}

	if column.IsText() && column.Width < 1 {
		return nil, NewConfigurationError("text column %q has no usable width", column.Name)
	}

	method := cfg.Method
	if column.IsText() && method == m.MethodTransform {
		slog.Warn("Transform method cannot be used with text columns, using sequential", "column", column.Name)

		method = m.MethodSequential
	}

	vm := &ValueMapper{
		column:    column,
		method:    method,
		maxRandom: cfg.MaxRandom,
		oneToOne:  cfg.OneToOne,
		table:     make(map[m.Value]m.Value),
		seq:       -1,
		rng:       rng,
	}

	if cfg.Offset != nil {
		vm.offset = *cfg.Offset
	}

	if cfg.Scale != nil {
		vm.scale = *cfg.Scale
	}

	if column.IsText() {
		vm.root = cfg.ValueRoot

		available := column.Width - utf8.RuneCountInString(vm.root)
		if available < 1 {
			vm.root = ""
			available = column.Width
		}

		vm.maxRandom = min(vm.maxRandom, pow10(min(available, maxTextDigits))-1)
	}

	if vm.oneToOne {
		vm.issued = make(map[m.Value]struct{})
	}

	return vm, nil
}

// Column returns the descriptor the mapper was built for.
func (vm *ValueMapper) Column() m.Column { return vm.column }

// Method returns the effective method after text coercion.
func (vm *ValueMapper) Method() m.Method { return vm.method }

// OneToOne reports whether distinct inputs must map to distinct outputs.
func (vm *ValueMapper) OneToOne() bool { return vm.oneToOne }

// MaxRandom returns the effective random bound after width clamping.
func (vm *ValueMapper) MaxRandom() int64 { return vm.maxRandom }

// ValueRoot returns the text prefix in use, empty when it was dropped.
func (vm *ValueMapper) ValueRoot() string { return vm.root }

// Distinct returns the number of table entries.
func (vm *ValueMapper) Distinct() int { return len(vm.table) }

// Transform returns the substitution for v, creating and memoizing one the
// first time v is seen.
func (vm *ValueMapper) Transform(v m.Value) (m.Value, error) {
	if sub, ok := vm.table[v]; ok {
		return sub, nil
	}

	var (
		sub m.Value
		err error
	)

	switch vm.method {
	case m.MethodSequential:
		sub = vm.sequential()
	case m.MethodTransform:
		sub = vm.linear(v)
	case m.MethodRandom:
		sub, err = vm.random()
	default:
		return m.Value{}, NewConfigurationError("unsupported method %s", vm.method)
	}

	if err != nil {
		return m.Value{}, err
	}

	vm.store(v, sub)

	return sub, nil
}

// Restore seeds one entry from a previously saved mapping. Existing entries
// win; the sequence counter advances to at least the restored id.
func (vm *ValueMapper) Restore(sub, original m.Value) error {
	if vm.method == m.MethodTransform {
		return nil
	}

	if _, ok := vm.table[original]; ok {
		return nil
	}

	if vm.column.IsText() && utf8.RuneCountInString(sub.Str) > vm.column.Width {
		return NewConfigurationError("saved value %q for column %q is wider than the column width %d",
			sub.Str, vm.column.Name, vm.column.Width)
	}

	if id, ok := vm.restoredID(sub); ok {
		if vm.method == m.MethodRandom && vm.boundedID(sub, id) && id > vm.maxRandom {
			return NewConfigurationError("saved value %s for column %q exceeds the random bound %d",
				sub, vm.column.Name, vm.maxRandom)
		}

		vm.seq = max(vm.seq, id)
	}

	vm.store(original, sub)

	return nil
}

// Table returns the column's entries in first-seen order.
func (vm *ValueMapper) Table() m.MappingTable {
	entries := make([]m.MappingEntry, 0, len(vm.order))
	for _, original := range vm.order {
		entries = append(entries, m.MappingEntry{Substitute: vm.table[original], Original: original})
	}

	return m.MappingTable{
		Column:  vm.column.Name,
		Kind:    vm.column.Kind,
		Method:  vm.method,
		Entries: entries,
	}
}

func (vm *ValueMapper) store(original, sub m.Value) {
	vm.table[original] = sub
	vm.order = append(vm.order, original)

	if vm.oneToOne {
		vm.issued[sub] = struct{}{}
	}
}

func (vm *ValueMapper) sequential() m.Value {
	vm.seq++
	if !vm.column.IsText() {
		return m.Numeric(float64(vm.seq))
	}

	return m.Text(vm.render(vm.root, vm.seq))
}

func (vm *ValueMapper) linear(v m.Value) m.Value {
	if v.Missing {
		return m.Missing()
	}

	return m.Numeric(v.Num*vm.scale + vm.offset)
}

func (vm *ValueMapper) random() (m.Value, error) {
	draw := vm.rng.Int64N(min(vm.maxRandom, maxRandomDraw) + 1)

	if !vm.column.IsText() {
		numeric := func(i int64) m.Value { return m.Numeric(float64(i)) }
		if !vm.oneToOne {
			return numeric(draw), nil
		}

		return vm.ensureDistinct(draw, numeric)
	}

	candidate := vm.render(vm.root, draw)
	if !vm.oneToOne {
		return m.Text(candidate), nil
	}

	// The search varies the trailing digit run and keeps whatever precedes it.
	digits := trailingDigits.FindString(candidate)
	stem := strings.TrimSuffix(candidate, digits)

	start, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		start = vm.maxRandom + 1
	}

	return vm.ensureDistinct(start, func(i int64) m.Value {
		return m.Text(vm.render(stem, i))
	})
}

// render joins prefix and n and keeps the rightmost width characters.
func (vm *ValueMapper) render(prefix string, n int64) string {
	return rightmost(prefix+strconv.FormatInt(n, 10), vm.column.Width)
}

// restoredID extracts the sequential id carried by a saved substitute.
func (vm *ValueMapper) restoredID(sub m.Value) (int64, bool) {
	if sub.Missing {
		return 0, false
	}

	if !vm.column.IsText() {
		if sub.Num != float64(int64(sub.Num)) {
			return 0, false
		}

		return int64(sub.Num), true
	}

	digits := trailingDigits.FindString(sub.Str)
	if digits == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// boundedID reports whether id is purely the drawn number, so it can be
// compared with the random bound.
func (vm *ValueMapper) boundedID(sub m.Value, id int64) bool {
	if !vm.column.IsText() {
		return true
	}

	rest, ok := strings.CutPrefix(sub.Str, vm.root)

	return ok && rest == strconv.FormatInt(id, 10)
}

func rightmost(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	runes := []rune(s)

	return string(runes[len(runes)-width:])
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}

	return p
}
