package blocklist

const (
	// cacheCount caps how many anchors are retained.
	cacheCount = 8
	// cacheSwitch is the number of blocks a resolution must cross before an
	// anchor is recorded for the resolved block.
	cacheSwitch = 30
)

// anchor remembers the logical index of a block's first element at the time
// the anchor was recorded. An anchor is only as fresh as the last structural
// change at or before its block, so the container invalidates eagerly.
type anchor[T any] struct {
	indexOfStart int
	block        *block[T]
}

// anchorCache is a small ordered set of anchors used to shortcut chain
// traversal. It is owned exclusively by the List and never handed out.
type anchorCache[T any] struct {
	anchors []anchor[T]
}

// bestFor returns the starting block and remaining distance for a walk to
// index, choosing the anchor with the smallest positive remaining distance;
// ties keep the first encountered. The winning anchor is promoted to the
// front of the scan order to bias future lookups toward recently useful
// anchors. ok is false when no anchor beats walking from the head.
func (c *anchorCache[T]) bestFor(index int) (from *block[T], distance int, ok bool) {
	best := -1
	distance = index
	for i, a := range c.anchors {
		if a.indexOfStart < index && index-a.indexOfStart < distance {
			distance = index - a.indexOfStart
			best = i
		}
	}
	if best == -1 {
		return nil, 0, false
	}
	from = c.anchors[best].block
	c.anchors[0], c.anchors[best] = c.anchors[best], c.anchors[0]
	return from, distance, true
}

// record adds an anchor for a block whose first element sits at indexOfStart,
// evicting the tail of the scan order first if the cache is full.
func (c *anchorCache[T]) record(indexOfStart int, b *block[T]) {
	if len(c.anchors) >= cacheCount {
		c.anchors = c.anchors[:cacheCount-1]
	}
	c.anchors = append(c.anchors, anchor[T]{indexOfStart: indexOfStart, block: b})
}

// invalidateFrom drops every anchor whose recorded start is at or after
// index.
func (c *anchorCache[T]) invalidateFrom(index int) {
	keep := c.anchors[:0]
	for _, a := range c.anchors {
		if a.indexOfStart < index {
			keep = append(keep, a)
		}
	}
	// Unpin blocks referenced by the dropped tail.
	for i := len(keep); i < len(c.anchors); i++ {
		c.anchors[i].block = nil
	}
	c.anchors = keep
}

func (c *anchorCache[T]) clear() {
	for i := range c.anchors {
		c.anchors[i].block = nil
	}
	c.anchors = c.anchors[:0]
}
