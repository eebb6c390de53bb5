package qute

import "github.com/RoaringBitmap/roaring/v2"

var _ Iterator = (*bitmapIterator)(nil)

// bitmapIterator is a leaf iterator backed by a roaring.Bitmap, for callers
// that already keep their posting lists in compressed bitmap form instead
// of sorted slices. SkipTo is implemented with AdvanceIfNeeded rather than
// a linear scan, so it costs roughly what VectorIterator's binary search
// costs.
type bitmapIterator struct {
	bm      *roaring.Bitmap
	it      roaring.IntPeekable
	current DocId
	ok      bool
}

// NewBitmapIterator returns a leaf iterator over the documents set in bm.
// bm is read-only for the lifetime of the iterator.
func NewBitmapIterator(bm *roaring.Bitmap) Iterator {
	b := &bitmapIterator{bm: bm, it: bm.Iterator()}
	b.ok = b.it.HasNext()
	if b.ok {
		b.current = b.it.Next()
	}
	return b
}

func (b *bitmapIterator) Next() bool {
	if !b.ok {
		return false
	}
	if b.it.HasNext() {
		b.current = b.it.Next()
		return true
	}
	b.ok = false
	return false
}

func (b *bitmapIterator) SkipTo(target DocId) bool {
	if !b.ok || target <= b.current {
		return b.ok
	}
	b.it.AdvanceIfNeeded(target)
	if b.it.HasNext() {
		b.current = b.it.Next()
		return true
	}
	b.ok = false
	return false
}

func (b *bitmapIterator) Valid() bool { return b.ok }

func (b *bitmapIterator) Value() DocId {
	if !b.ok {
		return InvalidDocID
	}
	return b.current
}

// RemainingDocs is exact: the bitmap's rank operation gives the number of
// set bits at or before the current position in O(log n).
func (b *bitmapIterator) RemainingDocs() uint64 {
	if !b.ok {
		return 0
	}
	return b.bm.GetCardinality() - b.bm.Rank(b.current) + 1
}

func (b *bitmapIterator) Tags() []string { return nil }

func (b *bitmapIterator) HasTag() bool { return false }
