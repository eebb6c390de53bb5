package qute

// Iterator is a stateful cursor over a conceptual set of DocId values,
// always positioned either at some current Value (valid) or exhausted.
// An Iterator is owned exclusively by its parent (a compound node) or by
// the caller (the root), is never cloned, and is not safe for concurrent
// use — see the package-level concurrency note in parser.go.
type Iterator interface {
	// Next advances past the current value and returns the post-condition
	// Valid(). If the iterator was already invalid, it returns false.
	Next() bool

	// SkipTo moves to the smallest contained value >= target and returns
	// the post-condition Valid(). Calling with target <= Value() is a
	// no-op.
	SkipTo(target DocId) bool

	// Valid reports whether the iterator is currently positioned at a
	// value.
	Valid() bool

	// Value returns the current value, or InvalidDocID if !Valid().
	Value() DocId

	// RemainingDocs estimates the documents from the current position
	// onward. It is monotonically non-increasing across Next/SkipTo calls.
	// Leaf iterators report an exact count; compound iterators report an
	// approximation, which for Or (the largest child count) can be below
	// the true size of the union.
	RemainingDocs() uint64

	// Tags returns the tag labels of every sub-expression that
	// contributed to the current value. Requires Valid().
	Tags() []string

	// HasTag reports whether this iterator or any descendant carries a
	// tag.
	HasTag() bool
}

// Walk invokes callback on every remaining value of it, in ascending
// order, until it is exhausted.
func Walk(it Iterator, callback func(DocId)) {
	for it.Valid() {
		callback(it.Value())
		it.Next()
	}
}

var _ Iterator = (*emptyIterator)(nil)

// emptyIterator is always invalid.
type emptyIterator struct{}

// NewEmptyIterator returns an iterator over the empty set.
func NewEmptyIterator() Iterator { return emptyIterator{} }

func (emptyIterator) Next() bool            { return false }
func (emptyIterator) SkipTo(DocId) bool     { return false }
func (emptyIterator) Valid() bool           { return false }
func (emptyIterator) Value() DocId          { return InvalidDocID }
func (emptyIterator) RemainingDocs() uint64 { return 0 }
func (emptyIterator) Tags() []string        { return nil }
func (emptyIterator) HasTag() bool          { return false }
