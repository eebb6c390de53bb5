package qute

var _ Iterator = (*diffIterator)(nil)

// diffIterator is lhs minus rhs: every value of lhs that rhs does not also
// contain. Tags are always lhs's, since rhs only ever excludes values, it
// never contributes to why a value matched.
type diffIterator struct {
	lhs, rhs Iterator
}

// NewDiffIterator returns lhs with every value also present in rhs removed.
func NewDiffIterator(lhs, rhs Iterator) Iterator {
	d := &diffIterator{lhs: lhs, rhs: rhs}
	d.nextAgreement()
	return d
}

// nextAgreement advances lhs until it sits on a value rhs does not contain,
// or lhs is exhausted.
func (d *diffIterator) nextAgreement() {
	for d.lhs.Valid() {
		if !d.rhs.SkipTo(d.lhs.Value()) || d.rhs.Value() != d.lhs.Value() {
			return
		}
		d.lhs.Next()
	}
}

func (d *diffIterator) Next() bool {
	if !d.lhs.Next() {
		return false
	}
	d.nextAgreement()
	return d.Valid()
}

func (d *diffIterator) SkipTo(target DocId) bool {
	if !d.lhs.SkipTo(target) {
		return false
	}
	d.nextAgreement()
	return d.Valid()
}

func (d *diffIterator) Valid() bool { return d.lhs.Valid() }

func (d *diffIterator) Value() DocId { return d.lhs.Value() }

// RemainingDocs takes lhs's count as the upper bound; rhs can only shrink
// the result, never grow it.
func (d *diffIterator) RemainingDocs() uint64 { return d.lhs.RemainingDocs() }

func (d *diffIterator) Tags() []string { return d.lhs.Tags() }

func (d *diffIterator) HasTag() bool { return d.lhs.HasTag() }
