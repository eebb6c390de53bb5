package qute

import "sort"

var _ Iterator = (*vectorIterator)(nil)

// vectorIterator is a leaf iterator backed by a sorted, duplicate-free
// slice of DocId. The slice is never mutated; the caller decides whether
// to hand over ownership of it or keep a reference of their own — slices
// alias their backing array either way, so there is no separate
// borrowed/owned variant like the C++ source's VectorIterator needs.
type vectorIterator struct {
	docs []DocId
	pos  int
}

// NewVectorIterator returns a leaf iterator over docs, which must already
// be sorted in strictly ascending order with no duplicates.
func NewVectorIterator(docs []DocId) Iterator {
	return &vectorIterator{docs: docs}
}

func (v *vectorIterator) Next() bool {
	if !v.Valid() {
		return false
	}
	v.pos++
	return v.Valid()
}

func (v *vectorIterator) SkipTo(target DocId) bool {
	// lower bound search starting from pos, never backward.
	v.pos += sort.Search(len(v.docs)-v.pos, func(i int) bool {
		return v.docs[v.pos+i] >= target
	})
	return v.Valid()
}

func (v *vectorIterator) Valid() bool { return v.pos < len(v.docs) }

func (v *vectorIterator) Value() DocId {
	if !v.Valid() {
		return InvalidDocID
	}
	return v.docs[v.pos]
}

func (v *vectorIterator) RemainingDocs() uint64 { return uint64(len(v.docs) - v.pos) }

func (v *vectorIterator) Tags() []string { return nil }

func (v *vectorIterator) HasTag() bool { return false }
