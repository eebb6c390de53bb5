package qute

var _ Iterator = (*orIterator)(nil)

// orIterator is the union of its children, kept as a hand-rolled array
// min-heap ordered on Value(). A textbook container/heap would hide the
// backing slice; Tags needs direct positional access to walk the heap
// shape (every node's value is <= both its children's), so the heap is
// maintained by hand instead.
type orIterator struct {
	heap []Iterator
}

// NewOrIterator returns the union of children. children must be non-empty;
// a single child is returned unwrapped by the query parser, but
// NewOrIterator itself does not special-case that.
func NewOrIterator(children []Iterator) Iterator {
	kept := children[:0]
	for _, c := range children {
		if c.Valid() {
			kept = append(kept, c)
		}
	}
	o := &orIterator{heap: kept}
	for i := len(o.heap)/2 - 1; i >= 0; i-- {
		o.siftDown(i)
	}
	return o
}

// siftDown restores the min-heap property at and below pos, assuming both
// subtrees of pos are already valid heaps.
func (o *orIterator) siftDown(pos int) {
	n := len(o.heap)
	for {
		left := 2*pos + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && o.heap[right].Value() < o.heap[left].Value() {
			smallest = right
		}
		if o.heap[smallest].Value() >= o.heap[pos].Value() {
			return
		}
		o.heap[pos], o.heap[smallest] = o.heap[smallest], o.heap[pos]
		pos = smallest
	}
}

func (o *orIterator) Next() bool {
	curr := o.Value()
	for len(o.heap) > 0 && o.heap[0].Value() == curr {
		if o.heap[0].Next() {
			o.siftDown(0)
		} else {
			last := len(o.heap) - 1
			o.heap[0] = o.heap[last]
			o.heap = o.heap[:last]
			if len(o.heap) > 0 {
				o.siftDown(0)
			}
		}
	}
	return o.Valid()
}

func (o *orIterator) SkipTo(target DocId) bool {
	kept := o.heap[:0]
	for _, c := range o.heap {
		if c.SkipTo(target) {
			kept = append(kept, c)
		}
	}
	o.heap = kept
	for i := len(o.heap)/2 - 1; i >= 0; i-- {
		o.siftDown(i)
	}
	return o.Valid()
}

func (o *orIterator) Valid() bool { return len(o.heap) > 0 }

func (o *orIterator) Value() DocId {
	if len(o.heap) == 0 {
		return InvalidDocID
	}
	return o.heap[0].Value()
}

func (o *orIterator) RemainingDocs() uint64 {
	var max uint64
	for _, c := range o.heap {
		if r := c.RemainingDocs(); r > max {
			max = r
		}
	}
	return max
}

func (o *orIterator) Tags() []string {
	if !o.Valid() {
		return nil
	}
	var tags []string
	o.collectTags(0, o.Value(), &tags)
	return tags
}

// collectTags walks the heap from pos, relying on the heap invariant that
// a node's value is never greater than either child's value: once a node's
// value doesn't match curr, neither does anything beneath it, so the walk
// can prune that whole subtree.
func (o *orIterator) collectTags(pos int, curr DocId, tags *[]string) {
	if pos >= len(o.heap) || o.heap[pos].Value() != curr {
		return
	}
	if o.heap[pos].HasTag() {
		*tags = append(*tags, o.heap[pos].Tags()...)
	}
	o.collectTags(2*pos+1, curr, tags)
	o.collectTags(2*pos+2, curr, tags)
}

func (o *orIterator) HasTag() bool {
	for _, c := range o.heap {
		if c.HasTag() {
			return true
		}
	}
	return false
}
