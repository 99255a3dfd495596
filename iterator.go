package blocklist

// Iterator is a forward-only, single-pass cursor over the chain. It is
// handed its starting block once and from then on walks next links directly,
// never re-resolving from the head. A snapshot of the List's change counter
// taken at creation is compared on every call; a mismatch means the List was
// structurally modified by something other than this Iterator.
type Iterator[T any] struct {
	list      *List[T]
	block     *block[T]
	index     int // logical index of the last yielded element
	offset    int // offset of the last yielded element within block
	snapshot  uint64
	removable bool
}

// Iter returns an Iterator positioned before the first element.
func (l *List[T]) Iter() (*Iterator[T], error) {
	return l.IterAt(0)
}

// IterAt returns an Iterator positioned before the element at start. start
// may equal Len, giving an Iterator with nothing to yield.
func (l *List[T]) IterAt(start int) (*Iterator[T], error) {
	if start < 0 || start > l.length {
		return nil, &ErrIndexOutOfRange{Index: start, Length: l.length}
	}
	it := &Iterator[T]{
		list:     l,
		index:    start - 1,
		snapshot: l.modCount,
	}
	b := l.head
	for start >= b.used && b.next != nil {
		start -= b.used
		b = b.next
	}
	it.block = b
	it.offset = start - 1
	return it, nil
}

// HasNext reports whether Next has an element to yield.
func (it *Iterator[T]) HasNext() bool {
	return it.index+1 < it.list.length
}

// Next advances the Iterator and yields the next element, crossing into
// successor blocks as blocks are exhausted.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.snapshot != it.list.modCount {
		return zero, ErrConcurrentModification
	}
	if !it.HasNext() {
		return zero, ErrIterationDone
	}
	for it.offset+1 >= it.block.used {
		it.offset = -1
		it.block = it.block.next
	}
	it.offset++
	it.index++
	it.removable = true
	return it.block.data[it.offset], nil
}

// Remove deletes the element yielded by the last Next. It is valid exactly
// once per advance. The List's change counter and the Iterator's snapshot
// are bumped in lockstep, so this Iterator stays live while any other
// iterator over the same List is invalidated.
func (it *Iterator[T]) Remove() error {
	if it.snapshot != it.list.modCount {
		return ErrConcurrentModification
	}
	if !it.removable {
		return ErrRemoveNotReady
	}
	it.block.remove(it.offset)
	it.list.cache.invalidateFrom(it.index - it.offset)
	it.list.modCount++
	it.snapshot++
	it.list.length--
	it.offset--
	it.index--
	it.removable = false
	return nil
}

// Each applies fn to every remaining element, advancing the Iterator to the
// end. It stops early if the List is structurally modified underneath it.
func (it *Iterator[T]) Each(fn func(T)) error {
	for it.HasNext() {
		value, err := it.Next()
		if err != nil {
			return err
		}
		fn(value)
	}
	return nil
}
