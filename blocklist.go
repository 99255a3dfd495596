package blocklist

// List is a random-access sequence stored as a singly linked chain of
// fixed-capacity blocks. The zero value is not usable; use New.
type List[T any] struct {
	blockSize int
	length    int
	head      *block[T]
	cache     anchorCache[T]
	// modCount is bumped by every structural mutation and lets Iterators
	// detect changes made behind their back.
	modCount uint64
}

// New returns a List configured by the options given. The nominal block size
// must be greater than 4 so the split and merge thresholds have room to
// work; anything smaller is rejected with ErrInvalidBlockSize.
func New[T any](opts ...func(*config)) (*List[T], error) {
	cfg := resolveConfig(opts...)
	if cfg.blockSize <= 4 {
		return nil, &ErrInvalidBlockSize{Size: cfg.blockSize}
	}
	return &List[T]{
		blockSize: cfg.blockSize,
		head:      newBlock[T](cfg.blockSize),
	}, nil
}

// Len returns the number of elements held.
func (l *List[T]) Len() int {
	return l.length
}

// locate resolves a logical index in [0, length] to its owning block and
// local offset, starting from the best cache anchor (or the head) and
// walking next links while subtracting block sizes. A walk that crosses
// cacheSwitch or more blocks records a new anchor at the resolved block.
// For index == length the tail block and its used count come back, which is
// the append position.
func (l *List[T]) locate(index int) (*block[T], int) {
	b, distance, ok := l.cache.bestFor(index)
	if !ok {
		b = l.head
		distance = index
	}
	crossed := 0
	for distance >= b.used && b.next != nil {
		distance -= b.used
		b = b.next
		crossed++
	}
	if crossed >= cacheSwitch {
		l.cache.record(index-distance, b)
	}
	return b, distance
}

// Insert places value at index, shifting later elements right. index may
// equal Len, in which case the value is appended.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	b, offset := l.locate(index)
	// Anchors at or after the insertion point shift right; drop them.
	l.cache.invalidateFrom(index)
	// Mirror of the locate fallback: an offset past the block's used count
	// belongs in a successor when one exists.
	for offset > b.used && b.next != nil {
		offset -= b.used
		b = b.next
	}
	b.insert(offset, value)
	l.length++
	if b.used > l.blockSize {
		b.separate(l.blockSize)
	}
	l.modCount++
	return nil
}

// Append adds value after the last element.
func (l *List[T]) Append(value T) error {
	return l.Insert(l.length, value)
}

// Remove deletes and returns the element at index. The walk here is uncached
// since it has to track the preceding block: an emptied block is spliced out
// of the chain, and a block left under a quarter of the block size is merged
// into its predecessor when the combined size stays under half the block
// size.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.length {
		return zero, &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	var prev *block[T]
	b := l.head
	offset := index
	for offset >= b.used {
		offset -= b.used
		prev = b
		b = b.next
	}
	value := b.remove(offset)
	// Anchors from this block's start onward may now be wrong.
	l.cache.invalidateFrom(index - offset)
	if b.used == 0 && prev != nil {
		prev.next = b.next
	} else if b.used < l.blockSize/4 && prev != nil && prev.used+b.used < l.blockSize/2 {
		// Merge the undersized remainder into its predecessor.
		copy(prev.data[prev.used:], b.data[:b.used])
		prev.used += b.used
		prev.next = b.next
	}
	l.modCount++
	l.length--
	return value, nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.length {
		return zero, &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	b, offset := l.locate(index)
	return b.data[offset], nil
}

// Set replaces the element at index and returns the previous value. No
// structural change happens, so anchors stay valid.
func (l *List[T]) Set(index int, value T) (T, error) {
	var zero T
	if index < 0 || index >= l.length {
		return zero, &ErrIndexOutOfRange{Index: index, Length: l.length}
	}
	b, offset := l.locate(index)
	old := b.data[offset]
	b.data[offset] = value
	return old, nil
}

// RemoveRange deletes the elements in [from, to). Blocks fully covered by
// the region are spliced out whole; partial coverage is removed in place.
// The whole anchor cache is dropped since any anchor at or after from could
// name a spliced-out block.
func (l *List[T]) RemoveRange(from, to int) error {
	if from < 0 || from > to || to > l.length {
		return &ErrInvalidRange{From: from, To: to, Length: l.length}
	}
	if from == to {
		return nil
	}
	var prev *block[T]
	b := l.head
	begin := from
	for begin >= b.used && b.next != nil {
		begin -= b.used
		prev = b
		b = b.next
	}
	remaining := to - from
	for remaining > 0 {
		if begin == 0 && remaining >= b.used {
			// The region covers this whole block; splice it out.
			remaining -= b.used
			if prev != nil {
				prev.next = b.next
			} else {
				l.head = b.next
			}
			b = b.next
			continue
		}
		end := begin + remaining
		if end > b.used {
			end = b.used
		}
		b.removeRange(begin, end)
		remaining -= end - begin
		// Whatever is left of the region starts the next block.
		begin = 0
		prev = b
		b = b.next
	}
	if l.head == nil {
		l.head = newBlock[T](l.blockSize)
	}
	l.cache.clear()
	l.length -= to - from
	l.modCount++
	return nil
}

// Clear discards the whole chain, leaving a single empty block.
func (l *List[T]) Clear() {
	l.head = newBlock[T](l.blockSize)
	l.length = 0
	l.cache.clear()
	l.modCount++
}
