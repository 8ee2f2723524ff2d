package jdbc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleResult_Empty(t *testing.T) {
	got, err := SingleResult([]string{})
	require.ErrorIs(t, err, ErrNoMatchingRecord)
	assert.ErrorIs(t, err, ErrDataAccess)
	assert.Contains(t, err.Error(), "no matching data")
	assert.Empty(t, got)

	_, err = SingleResult[int](nil)
	require.ErrorIs(t, err, ErrNoMatchingRecord)
}

func TestSingleResult_One(t *testing.T) {
	got, err := SingleResult([]string{"alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestSingleResult_ReturnsSamePointer(t *testing.T) {
	type row struct{ id int64 }
	r := &row{id: 7}

	got, err := SingleResult([]*row{r})
	require.NoError(t, err)
	assert.Same(t, r, got)
}

func TestSingleResult_Many(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		count string
	}{
		{"two", []int{1, 2}, "2"},
		{"three", []int{1, 2, 3}, "3"},
		{"ten", make([]int, 10), "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SingleResult(tt.input)
			require.Error(t, err)
			assert.Zero(t, got)

			var ambiguous *AmbiguousRecordCountError
			require.True(t, errors.As(err, &ambiguous), "expected AmbiguousRecordCountError, got %T", err)
			assert.Equal(t, len(tt.input), ambiguous.Count)
			assert.Contains(t, err.Error(), tt.count)
			assert.ErrorIs(t, err, ErrDataAccess)
			assert.NotErrorIs(t, err, ErrNoMatchingRecord)
		})
	}
}

func TestSingleResult_Repeatable(t *testing.T) {
	input := []string{"a", "b"}

	_, first := SingleResult(input)
	_, second := SingleResult(input)
	assert.Equal(t, first, second)

	one := []string{"a"}
	v1, err1 := SingleResult(one)
	v2, err2 := SingleResult(one)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, v1, v2)
}
