package qute

var _ Iterator = (*andIterator)(nil)

// andIterator is the intersection of its children. It keeps the child with
// the largest current value in slot 0 and skips every other child forward
// to that value; whichever child lands above the candidate becomes the new
// slot-0 candidate and the scan restarts. Every restart follows a skip that
// strictly advanced some child, so the scan always terminates.
type andIterator struct {
	children []Iterator
}

// NewAndIterator returns the intersection of children. children must be
// non-empty; a single child is returned unwrapped by the query parser, but
// NewAndIterator itself does not special-case that.
func NewAndIterator(children []Iterator) Iterator {
	a := &andIterator{children: children}
	a.rotateMaxToFront()
	a.nextAgreement()
	return a
}

func (a *andIterator) rotateMaxToFront() {
	maxIdx := 0
	for i := 1; i < len(a.children); i++ {
		if a.children[i].Value() > a.children[maxIdx].Value() {
			maxIdx = i
		}
	}
	a.children[0], a.children[maxIdx] = a.children[maxIdx], a.children[0]
}

// nextAgreement advances children[1:] until every child agrees with
// children[0]'s value, or children[0] becomes invalid.
func (a *andIterator) nextAgreement() {
	for a.children[0].Valid() {
		candidate := a.children[0].Value()
		agreed := true
		for i := 1; i < len(a.children); i++ {
			if a.children[i].Value() == candidate {
				continue
			}
			if !a.children[i].SkipTo(candidate) {
				// This child is exhausted; swap it into slot 0 so Valid()
				// reflects that the whole intersection is done, instead of
				// leaving the old candidate looking like a match.
				a.children[0], a.children[i] = a.children[i], a.children[0]
				return
			}
			if a.children[i].Value() != candidate {
				// Overshot: this child is now the new candidate.
				a.children[0], a.children[i] = a.children[i], a.children[0]
				agreed = false
				break
			}
		}
		if agreed {
			return
		}
	}
}

func (a *andIterator) Next() bool {
	if !a.children[0].Next() {
		return false
	}
	a.nextAgreement()
	return a.Valid()
}

func (a *andIterator) SkipTo(target DocId) bool {
	if !a.children[0].SkipTo(target) {
		return false
	}
	a.nextAgreement()
	return a.Valid()
}

func (a *andIterator) Valid() bool { return a.children[0].Valid() }

func (a *andIterator) Value() DocId { return a.children[0].Value() }

func (a *andIterator) RemainingDocs() uint64 {
	min := a.children[0].RemainingDocs()
	for _, c := range a.children[1:] {
		if r := c.RemainingDocs(); r < min {
			min = r
		}
	}
	return min
}

func (a *andIterator) Tags() []string {
	var tags []string
	for _, c := range a.children {
		if c.HasTag() {
			tags = append(tags, c.Tags()...)
		}
	}
	return tags
}

func (a *andIterator) HasTag() bool {
	for _, c := range a.children {
		if c.HasTag() {
			return true
		}
	}
	return false
}
