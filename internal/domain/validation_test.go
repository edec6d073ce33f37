package domain

import (
	"errors"
	"testing"

	"github.com/hengadev/errsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tabanon.dev/pkg/tabanon/internal/model"
)

var surveyColumns = []m.Column{
	{Index: 0, Name: "id", Kind: m.KindNumeric},
	{Index: 1, Name: "city", Kind: m.KindText, Width: 20},
	{Index: 2, Name: "score", Kind: m.KindNumeric},
}

func TestValidateOptions(t *testing.T) {
	sel, err := validateOptions(AnonymizeArgs{
		Columns:   []string{"city", "id"},
		Method:    m.MethodRandom,
		MaxRandom: []int64{50, 900},
		OneToOne:  []string{"id"},
		ValueRoot: "C",
	}, surveyColumns)
	require.NoError(t, err)

	require.Len(t, sel.columns, 2)
	assert.Equal(t, "city", sel.columns[0].Name)
	assert.Equal(t, 1, sel.columns[0].Index)
	assert.Equal(t, "id", sel.columns[1].Name)

	assert.Equal(t, MapperConfig{Method: m.MethodRandom, ValueRoot: "C", MaxRandom: 50}, sel.configs[0])
	assert.Equal(t, MapperConfig{Method: m.MethodRandom, ValueRoot: "C", MaxRandom: 900, OneToOne: true}, sel.configs[1])
}

func TestValidateOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    AnonymizeArgs
		wantKey []string
	}{
		{
			name:    "no columns",
			args:    AnonymizeArgs{Method: m.MethodSequential},
			wantKey: []string{"columns"},
		},
		{
			name:    "duplicate column",
			args:    AnonymizeArgs{Columns: []string{"id", "id"}, Method: m.MethodSequential},
			wantKey: []string{"columns"},
		},
		{
			name:    "unknown column",
			args:    AnonymizeArgs{Columns: []string{"id", "age"}, Method: m.MethodSequential},
			wantKey: []string{"unknown columns"},
		},
		{
			name:    "one-to-one outside selection",
			args:    AnonymizeArgs{Columns: []string{"id"}, OneToOne: []string{"city"}, Method: m.MethodRandom},
			wantKey: []string{"one-to-one"},
		},
		{
			name:    "unsupported method",
			args:    AnonymizeArgs{Columns: []string{"id"}, Method: m.Method(42)},
			wantKey: []string{"method"},
		},
		{
			name:    "transform without scale",
			args:    AnonymizeArgs{Columns: []string{"id"}, Method: m.MethodTransform, Offset: ptr(1.0)},
			wantKey: []string{"transform"},
		},
		{
			name:    "bound count mismatch",
			args:    AnonymizeArgs{Columns: []string{"id", "city", "score"}, Method: m.MethodRandom, MaxRandom: []int64{1, 2}},
			wantKey: []string{"max-random"},
		},
		{
			name:    "non-positive bound",
			args:    AnonymizeArgs{Columns: []string{"id"}, Method: m.MethodRandom, MaxRandom: []int64{0}},
			wantKey: []string{"max-random"},
		},
		{
			name: "several problems at once",
			args: AnonymizeArgs{
				Columns:  []string{"nope"},
				OneToOne: []string{"id"},
				Method:   m.MethodTransform,
			},
			wantKey: []string{"unknown columns", "one-to-one", "transform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateOptions(tt.args, surveyColumns)
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))

			var errs errsx.Map
			require.True(t, errors.As(err, &errs))
			assert.Len(t, errs, len(tt.wantKey))

			for _, key := range tt.wantKey {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestExpandBounds(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []int64
		n       int
		want    []int64
		wantErr bool
	}{
		{"default", nil, 2, []int64{DefaultMaxRandom, DefaultMaxRandom}, false},
		{"broadcast", []int64{7}, 3, []int64{7, 7, 7}, false},
		{"per column", []int64{1, 2}, 2, []int64{1, 2}, false},
		{"mismatch", []int64{1, 2}, 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandBounds(tt.bounds, tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
