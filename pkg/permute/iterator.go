package permute

// Iterator is a cursor over a contiguous slice of the permutation. It
// computes each element lazily through Get, holds no state beyond the
// cursor, and does not mutate the Permutation; any number of iterators
// may run concurrently over the same Permutation.
type Iterator struct {
	p        *Permutation
	cur, end uint64
	err      error
}

// Iter returns an iterator over the whole permutation, yielding
// Get(0), Get(1), ..., Get(n-1) in that order. Every call returns an
// independent, restarted sequence.
func (p *Permutation) Iter() *Iterator {
	return &Iterator{p: p, cur: 0, end: p.n}
}

// Range returns an iterator over the subset [lo, hi) of the
// permutation, yielding Get(lo), ..., Get(hi-1).
func (p *Permutation) Range(lo, hi uint64) (*Iterator, error) {
	if lo > hi || hi > p.n {
		return nil, ErrInvalidRange
	}
	return &Iterator{p: p, cur: lo, end: hi}, nil
}

// Next returns the next element of the sequence. It returns false when
// the sequence is exhausted, or when an element could not be computed,
// in which case Err reports the cause.
func (it *Iterator) Next() (uint64, bool) {
	if it.err != nil || it.cur == it.end {
		return 0, false
	}
	v, err := it.p.Get(it.cur)
	if err != nil {
		it.err = err
		return 0, false
	}
	it.cur++
	return v, true
}

// Err returns the error that stopped iteration early, if any. A fully
// consumed iterator reports nil.
func (it *Iterator) Err() error {
	return it.err
}
