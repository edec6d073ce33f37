package domain

import (
	m "tabanon.dev/pkg/tabanon/internal/model"
)

// candidateFunc renders the candidate substitute for search position i.
type candidateFunc func(i int64) m.Value

// ensureDistinct returns candidate(start) when it has not been issued yet.
// Otherwise it scans linearly away from start in a randomly chosen direction,
// then in the other one.
func (vm *ValueMapper) ensureDistinct(start int64, candidate candidateFunc) (m.Value, error) {
	if first := candidate(start); !vm.isIssued(first) {
		return first, nil
	}

	steps := [2]int64{1, -1}
	if vm.rng.IntN(2) == 1 {
		steps[0], steps[1] = steps[1], steps[0]
	}

	for _, step := range steps {
		if v, ok := vm.scan(start, step, candidate); ok {
			return v, nil
		}
	}

	return m.Value{}, NewMappingExhaustedError(vm.column.Name)
}

// scan walks from start+step up to maxRandom or down to 0, inclusive.
func (vm *ValueMapper) scan(start, step int64, candidate candidateFunc) (m.Value, bool) {
	for i := start + step; i >= 0 && (step < 0 || i <= vm.maxRandom); i += step {
		if v := candidate(i); !vm.isIssued(v) {
			return v, true
		}
	}

	return m.Value{}, false
}

func (vm *ValueMapper) isIssued(v m.Value) bool {
	_, ok := vm.issued[v]
	return ok
}
