package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageMergesTouchingIntervals(t *testing.T) {
	var c coverage
	c.add(10, 12)
	c.add(0, 4)
	c.add(4, 6)
	c.add(20, 25)
	assert.Equal(t, []interval{{0, 6}, {10, 12}, {20, 25}}, c.ivs)

	c.add(5, 21)
	assert.Equal(t, []interval{{0, 25}}, c.ivs)
}

func TestCoverageCovers(t *testing.T) {
	var c coverage
	assert.False(t, c.covers(0, 1))

	c.add(2, 5)
	c.add(7, 9)
	assert.True(t, c.covers(2, 5))
	assert.True(t, c.covers(3, 4))
	assert.False(t, c.covers(1, 3))
	assert.False(t, c.covers(4, 8))
	assert.False(t, c.covers(5, 7))
	assert.True(t, c.covers(7, 9))
	assert.False(t, c.covers(8, 10))
}
