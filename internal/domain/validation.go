package domain

import (
	"fmt"
	"strings"

	"github.com/hengadev/errsx"
	"github.com/samber/lo"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

// selection is the validated view of AnonymizeArgs against a dataset.
type selection struct {
	columns []m.Column
	configs []MapperConfig
}

// validateOptions checks every option against the dataset columns and
// reports all problems at once, wrapped in ErrConfiguration.
func validateOptions(args AnonymizeArgs, columns []m.Column) (selection, error) {
	errs := errsx.Map{}

	byName := lo.KeyBy(columns, func(c m.Column) string { return c.Name })

	if len(args.Columns) == 0 {
		errs.Set("columns", "at least one column must be selected")
	}

	if dups := lo.FindDuplicates(args.Columns); len(dups) > 0 {
		errs.Set("columns", fmt.Errorf("columns selected more than once: %s", strings.Join(dups, ", ")))
	}

	unknown := lo.Reject(args.Columns, func(name string, _ int) bool {
		_, ok := byName[name]
		return ok
	})
	if len(unknown) > 0 {
		errs.Set("unknown columns", fmt.Errorf("columns not in the dataset: %s", strings.Join(unknown, ", ")))
	}

	if extra := lo.Without(args.OneToOne, args.Columns...); len(extra) > 0 {
		errs.Set("one-to-one", fmt.Errorf("one-to-one columns must also be selected: %s", strings.Join(extra, ", ")))
	}

	if !lo.Contains(m.Methods, args.Method) {
		errs.Set("method", fmt.Errorf("unsupported method %s", args.Method))
	}

	if args.Method == m.MethodTransform && (args.Offset == nil || args.Scale == nil) {
		errs.Set("transform", "transform method requires both offset and scale")
	}

	bounds, err := expandBounds(args.MaxRandom, len(args.Columns))
	if err != nil {
		errs.Set("max-random", err)
	}

	if args.Method == m.MethodRandom {
		if bad := lo.Filter(bounds, func(b int64, _ int) bool { return b <= 0 }); len(bad) > 0 {
			errs.Set("max-random", fmt.Errorf("random bounds must be positive, got %v", bad))
		}
	}

	if err := errs.AsError(); err != nil {
		return selection{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	oneToOne := lo.SliceToMap(args.OneToOne, func(name string) (string, bool) { return name, true })

	sel := selection{
		columns: make([]m.Column, 0, len(args.Columns)),
		configs: make([]MapperConfig, 0, len(args.Columns)),
	}

	for i, name := range args.Columns {
		sel.columns = append(sel.columns, byName[name])
		sel.configs = append(sel.configs, MapperConfig{
			Method:    args.Method,
			ValueRoot: args.ValueRoot,
			MaxRandom: bounds[i],
			OneToOne:  oneToOne[name],
			Offset:    args.Offset,
			Scale:     args.Scale,
		})
	}

	return sel, nil
}

// expandBounds broadcasts a single bound to n columns; an empty list uses
// DefaultMaxRandom.
func expandBounds(bounds []int64, n int) ([]int64, error) {
	switch len(bounds) {
	case 0:
		return lo.Times(n, func(int) int64 { return DefaultMaxRandom }), nil
	case 1:
		return lo.Times(n, func(int) int64 { return bounds[0] }), nil
	case n:
		return bounds, nil
	default:
		return nil, fmt.Errorf("got %d random bounds for %d columns", len(bounds), n)
	}
}
