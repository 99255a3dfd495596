package blocklist

import (
	"fmt"

	"github.com/gholt/brimtext"
)

// Stats carries point-in-time information about a List as gathered by
// List.Stats.
type Stats struct {
	// Length is the number of elements the List held when Stats was called.
	Length int
	// Blocks is the number of blocks in the chain when Stats was called.
	Blocks int

	statsDebug    bool
	blockSize     int
	slack         int
	allocedSlots  int
	usedSlots     int
	smallestBlock int
	largestBlock  int
	anchors       int
	modCount      uint64
}

// Stats returns a Stats instance giving information about the List.
//
// Note that this walks the whole chain. The various values reported when
// debug=true are left undocumented because they are subject to change based
// on implementation. They are only provided when Stats.String() is called.
func (l *List[T]) Stats(debug bool) *Stats {
	s := &Stats{
		Length:     l.length,
		statsDebug: debug,
		blockSize:  l.blockSize,
		slack:      blockSlack,
		anchors:    len(l.cache.anchors),
		modCount:   l.modCount,
	}
	for b := l.head; b != nil; b = b.next {
		s.Blocks++
		if debug {
			s.allocedSlots += len(b.data)
			s.usedSlots += b.used
			if s.Blocks == 1 || b.used < s.smallestBlock {
				s.smallestBlock = b.used
			}
			if b.used > s.largestBlock {
				s.largestBlock = b.used
			}
		}
	}
	return s
}

func (s *Stats) String() string {
	report := [][]string{
		{"Length", fmt.Sprintf("%d", s.Length)},
		{"Blocks", fmt.Sprintf("%d", s.Blocks)},
	}
	if s.statsDebug {
		report = append(report, [][]string{
			{"blockSize", fmt.Sprintf("%d (+%d slack)", s.blockSize, s.slack)},
			{"allocedSlots", fmt.Sprintf("%d", s.allocedSlots)},
			{"usedSlots", fmt.Sprintf("%d %.1f%%", s.usedSlots, 100*float64(s.usedSlots)/float64(s.allocedSlots))},
			{"smallestBlock", fmt.Sprintf("%d", s.smallestBlock)},
			{"largestBlock", fmt.Sprintf("%d", s.largestBlock)},
			{"anchors", fmt.Sprintf("%d", s.anchors)},
			{"modCount", fmt.Sprintf("%d", s.modCount)},
		}...)
	}
	return brimtext.Align(report, nil)
}
