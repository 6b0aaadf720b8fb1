package astutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceContains(t *testing.T) {
	assert.True(t, SliceContains([]string{"a", "b", "c"}, "b"))
	assert.False(t, SliceContains([]string{"a", "b", "c"}, "z"))
	assert.False(t, SliceContains([]string{}, "a"))
	assert.True(t, SliceContains([]int{1, 2, 3}, 3))
}

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, got)

	names := MapSlice([]int{1, 2}, func(n int) string {
		if n == 1 {
			return "one"
		}
		return "two"
	})
	assert.Equal(t, []string{"one", "two"}, names)

	assert.Equal(t, []int{}, MapSlice([]int{}, func(n int) int { return n }))
}
