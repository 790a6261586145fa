package span

import "sort"

// interval is a half-open character range [start, end).
type interval struct {
	start int
	end   int
}

// coverage is a set of character offsets stored as sorted, disjoint,
// non-adjacent intervals. Adjacent ranges are merged on insert, so a range is
// fully covered iff a single stored interval contains it.
type coverage struct {
	ivs []interval
}

// covers reports whether every offset in [start, end) is in the set.
func (c *coverage) covers(start, end int) bool {
	// first interval whose end is beyond start
	i := sort.Search(len(c.ivs), func(i int) bool { return c.ivs[i].end > start })
	if i == len(c.ivs) {
		return false
	}
	iv := c.ivs[i]
	return iv.start <= start && end <= iv.end
}

// add inserts [start, end), merging any overlapping or touching intervals.
func (c *coverage) add(start, end int) {
	// first interval that could touch the new range
	lo := sort.Search(len(c.ivs), func(i int) bool { return c.ivs[i].end >= start })
	hi := lo
	for hi < len(c.ivs) && c.ivs[hi].start <= end {
		if c.ivs[hi].start < start {
			start = c.ivs[hi].start
		}
		if c.ivs[hi].end > end {
			end = c.ivs[hi].end
		}
		hi++
	}
	merged := interval{start: start, end: end}
	if lo == hi {
		c.ivs = append(c.ivs, interval{})
		copy(c.ivs[lo+1:], c.ivs[lo:])
		c.ivs[lo] = merged
		return
	}
	c.ivs[lo] = merged
	c.ivs = append(c.ivs[:lo+1], c.ivs[hi:]...)
}
