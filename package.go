// Package blocklist provides a random-access sequence container that stores
// its elements in a singly linked chain of fixed-capacity blocks (an
// unrolled linked list). It is meant for mixed workloads of insertion,
// deletion, indexed reads, and indexed writes, where a flat slice pays an
// O(n) shift per mutation and a plain linked list pays an O(n) walk per
// access.
//
// When a block grows past the nominal block size it is split at its midpoint
// and the back half becomes a new block spliced in right after it. When a
// removal leaves a block holding less than a quarter of the block size and
// its predecessor can absorb it while staying under half the block size, the
// block is merged into its predecessor and the chain shrinks. A small
// bounded cache of (index, block) anchors shortcuts the chain walk for
// lookups that land near recent ones.
//
// A List is not safe for concurrent use. Structural changes made through the
// List while an Iterator is alive are detected by the Iterator, which then
// fails with ErrConcurrentModification rather than yielding from a chain it
// no longer understands.
package blocklist
