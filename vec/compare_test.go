package vec_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/inplace/vec"
)

func mustOf[T any](t *testing.T, capacity int, values ...T) *vec.Vector[T] {
	t.Helper()
	v, err := vec.Of(capacity, values...)
	require.NoError(t, err)
	return v
}

func TestEqual(t *testing.T) {
	a := mustOf(t, 4, 1, 2, 3)
	b := mustOf(t, 8, 1, 2, 3)
	c := mustOf(t, 4, 1, 2, 4)
	d := mustOf(t, 4, 1, 2)

	assert.True(t, vec.Equal(a, b), "capacity does not participate in equality")
	assert.False(t, vec.Equal(a, c))
	assert.False(t, vec.Equal(a, d))
	assert.True(t, vec.Equal(vec.New[int](0), vec.New[int](3)))
}

func TestEqualFunc(t *testing.T) {
	a := mustOf(t, 4, 1, 2, 3)
	b := mustOf(t, 4, "1", "2", "3")

	assert.True(t, vec.EqualFunc(a, b, func(x int, s string) bool {
		return strconv.Itoa(x) == s
	}))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"less element", []int{1, 2, 2}, []int{1, 2, 3}, -1},
		{"greater element", []int{1, 9}, []int{1, 2, 3}, 1},
		{"shorter prefix", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer prefix", []int{1, 2, 3}, []int{1, 2}, 1},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustOf(t, 8, tt.a...)
			b := mustOf(t, 8, tt.b...)
			assert.Equal(t, tt.want, vec.Compare(a, b))
		})
	}
}

func TestCompareFunc(t *testing.T) {
	a := mustOf(t, 4, "b", "d")
	b := mustOf(t, 4, "a", "c")

	got := vec.CompareFunc(a, b, func(x, y string) int {
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
		return 0
	})
	assert.Equal(t, 1, got)
}
