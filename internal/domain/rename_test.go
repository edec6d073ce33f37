package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

func columnsNamed(names ...string) []m.Column {
	columns := make([]m.Column, len(names))
	for i, name := range names {
		columns[i] = m.Column{Index: i, Name: name}
	}

	return columns
}

func TestPlanRenames(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		all      []string
		selected []int
		want     []m.Rename
	}{
		{
			name:     "no root",
			root:     "",
			all:      []string{"id", "city"},
			selected: []int{0},
			want:     nil,
		},
		{
			name:     "fresh root starts at one",
			root:     "anon",
			all:      []string{"id", "city"},
			selected: []int{0, 1},
			want:     []m.Rename{{From: "id", To: "anon1"}, {From: "city", To: "anon2"}},
		},
		{
			name:     "continues above existing suffix",
			root:     "anon",
			all:      []string{"id", "ANON7", "anon2", "anonx", "city"},
			selected: []int{4},
			want:     []m.Rename{{From: "city", To: "anon8"}},
		},
		{
			name:     "root is matched literally",
			root:     "v.",
			all:      []string{"vx9", "v.3", "age"},
			selected: []int{2},
			want:     []m.Rename{{From: "age", To: "v.4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := columnsNamed(tt.all...)

			selected := make([]m.Column, 0, len(tt.selected))
			for _, i := range tt.selected {
				selected = append(selected, all[i])
			}

			got, err := planRenames(tt.root, all, selected, 64)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanRenames_TooLong(t *testing.T) {
	all := columnsNamed("a", "b")

	_, err := planRenames("column", all, all, 6)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "column1")
}
