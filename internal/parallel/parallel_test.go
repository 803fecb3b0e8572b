package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteCoversRange(t *testing.T) {
	assert := require.New(t)

	for _, size := range []int{0, 1, 3, 64, 1000} {
		visited := make([]int, size)
		Execute(0, size, func(start, end int) {
			for i := start; i < end; i++ {
				visited[i]++
			}
		})
		for i, count := range visited {
			assert.Equal(1, count, "size %d index %d", size, i)
		}
	}
}

func TestExecuteOffsetRange(t *testing.T) {
	assert := require.New(t)

	visited := make([]int, 20)
	Execute(5, 15, func(start, end int) {
		for i := start; i < end; i++ {
			visited[i]++
		}
	})
	for i, count := range visited {
		want := 0
		if i >= 5 && i < 15 {
			want = 1
		}
		assert.Equal(want, count, "index %d", i)
	}
}
