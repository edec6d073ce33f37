package domain

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/samber/lo"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

// planRenames names the selected columns root1, root2, ... starting one above
// the highest suffix any dataset column already uses with that root, compared
// case-insensitively. Every new name is checked against maxLen before anything
// is renamed.
func planRenames(root string, all, selected []m.Column, maxLen int) ([]m.Rename, error) {
	if root == "" {
		return nil, nil
	}

	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(root) + `(\d+)$`)

	base := lo.Reduce(all, func(highest int, column m.Column, _ int) int {
		match := pattern.FindStringSubmatch(column.Name)
		if match == nil {
			return highest
		}

		n, err := strconv.Atoi(match[1])
		if err != nil {
			return highest
		}

		return max(highest, n)
	}, 0)

	renames := make([]m.Rename, 0, len(selected))

	for i, column := range selected {
		name := root + strconv.Itoa(base+1+i)
		if maxLen > 0 && utf8.RuneCountInString(name) > maxLen {
			return nil, NewConfigurationError("new column name %q is longer than %d characters", name, maxLen)
		}

		renames = append(renames, m.Rename{From: column.Name, To: name})
	}

	return renames, nil
}
