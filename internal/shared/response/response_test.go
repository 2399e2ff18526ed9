package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{13, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{5, 0, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.limit), "total=%d limit=%d", c.total, c.limit)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(3, 3))
	assert.Equal(t, 3, ClampPage(99, 3))
	assert.Equal(t, 1, ClampPage(1, 1))
}

func TestNewPageMeta(t *testing.T) {
	m := NewPageMeta(1, 10, 13)
	assert.Equal(t, 1, m.Page)
	assert.Equal(t, 2, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.False(t, m.HasPrev)

	m = NewPageMeta(2, 10, 13)
	assert.Equal(t, 2, m.Page)
	assert.False(t, m.HasNext)
	assert.True(t, m.HasPrev)

	// beyond the last page clamps to the last page
	m = NewPageMeta(7, 10, 13)
	assert.Equal(t, 2, m.Page)

	// empty set still reports one empty page
	m = NewPageMeta(1, 10, 0)
	assert.Equal(t, 1, m.Page)
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
