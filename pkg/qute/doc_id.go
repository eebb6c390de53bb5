// Package qute implements a lightweight boolean set-algebra query engine
// over sorted posting lists of document identifiers, plus a small
// s-expression parser that builds an iterator tree from query text.
//
// The package owns two things: the iterator algebra (Empty, Vector, Bitmap
// leaves and And, Or, Diff, Tagged compounds) and the query parser. Term
// tokenization, on-disk index layout, ranking, posting-list compression and
// persistence all live outside the package — the only contract it needs
// from an embedder is a TermResolver mapping a term to an Iterator.
package qute

import "math"

// DocId identifies a document within a posting list. Posting lists are
// strictly ascending sequences of DocId with no duplicates.
type DocId = uint32

// InvalidDocID is returned by Value when an iterator is not valid.
const InvalidDocID DocId = math.MaxUint32
