package qute

var _ Iterator = (*taggedIterator)(nil)

// taggedIterator decorates an inner iterator with a tag label, applied
// whenever the query text attaches a "tag:" clause to a sub-expression.
// It is always HasTag() == true, regardless of whether the inner iterator
// carries tags of its own.
type taggedIterator struct {
	inner Iterator
	tag   string
}

// NewTaggedIterator wraps inner so that its Tags always include tag, in
// addition to any tags inner already carries.
func NewTaggedIterator(inner Iterator, tag string) Iterator {
	return &taggedIterator{inner: inner, tag: tag}
}

func (t *taggedIterator) Next() bool { return t.inner.Next() }

func (t *taggedIterator) SkipTo(target DocId) bool { return t.inner.SkipTo(target) }

func (t *taggedIterator) Valid() bool { return t.inner.Valid() }

func (t *taggedIterator) Value() DocId { return t.inner.Value() }

func (t *taggedIterator) RemainingDocs() uint64 { return t.inner.RemainingDocs() }

func (t *taggedIterator) Tags() []string {
	inner := t.inner.Tags()
	tags := make([]string, len(inner)+1)
	copy(tags, inner)
	tags[len(inner)] = t.tag
	return tags
}

func (t *taggedIterator) HasTag() bool { return true }
