package molecule

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// ringPool hands out ring-closure digits to the graph-to-tree writer
// (§4.7 "Ring-closure digit pool"). The first call for an unordered pair
// of atom ids allocates the smallest available digit; the second call for
// the same pair returns that digit and releases it. Released digits are
// kept in a min-heap so the next allocation always picks the smallest one
// available, per §9's "small bounded heap" note.
type ringPool struct {
	open     map[ringPairKey]int
	released *binaryheap.Heap
	next     int
}

type ringPairKey struct {
	lo, hi int
}

func newRingPairKey(a, b int) ringPairKey {
	if a > b {
		a, b = b, a
	}
	return ringPairKey{lo: a, hi: b}
}

func newRingPool() *ringPool {
	return &ringPool{
		open:     make(map[ringPairKey]int),
		released: binaryheap.NewWith(utils.IntComparator),
		next:     1,
	}
}

// digit returns the digit to write for the ring closure between sid and
// tid, allocating one on the opening call and releasing it on the
// matching closing call.
func (p *ringPool) digit(sid, tid int) int {
	key := newRingPairKey(sid, tid)
	if d, ok := p.open[key]; ok {
		delete(p.open, key)
		p.released.Push(d)
		return d
	}
	d := p.allocate()
	p.open[key] = d
	return d
}

func (p *ringPool) allocate() int {
	if top, ok := p.released.Peek(); ok {
		p.released.Pop()
		return top.(int)
	}
	d := p.next
	p.next++
	return d
}
