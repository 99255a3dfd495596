package blocklist

// blockSlack is the headroom past the nominal block size a block can hold
// before the container gets a chance to split it.
const blockSlack = 5

// block is one fixed-capacity segment of the chain. Live elements occupy
// data[:used] contiguously; there are no gaps.
type block[T any] struct {
	data []T
	used int
	next *block[T]
}

func newBlock[T any](blockSize int) *block[T] {
	return &block[T]{data: make([]T, blockSize+blockSlack)}
}

// insert shifts data[offset:used] right by one and places value at offset.
// The caller guarantees 0 <= offset <= used and that a slot is free.
func (b *block[T]) insert(offset int, value T) {
	copy(b.data[offset+1:b.used+1], b.data[offset:b.used])
	b.data[offset] = value
	b.used++
}

// remove shifts data[offset+1:used] left by one and returns the removed
// value. The caller guarantees 0 <= offset < used.
func (b *block[T]) remove(offset int) T {
	value := b.data[offset]
	copy(b.data[offset:b.used-1], b.data[offset+1:b.used])
	b.used--
	var zero T
	b.data[b.used] = zero // release for GC
	return value
}

// removeRange removes data[start:end] by shifting the remainder left.
func (b *block[T]) removeRange(start, end int) {
	copy(b.data[start:], b.data[end:b.used])
	removed := end - start
	var zero T
	for i := b.used - removed; i < b.used; i++ {
		b.data[i] = zero
	}
	b.used -= removed
}

// separate splits the block at the nominal midpoint, moving the back half
// into a new block spliced in as this block's immediate successor. Only the
// two blocks involved are touched; a split never cascades.
func (b *block[T]) separate(blockSize int) {
	div := blockSize / 2
	nb := newBlock[T](blockSize)
	copy(nb.data, b.data[div:b.used])
	nb.used = b.used - div
	var zero T
	for i := div; i < b.used; i++ {
		b.data[i] = zero
	}
	b.used = div
	nb.next = b.next
	b.next = nb
}
