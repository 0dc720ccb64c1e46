// Package transform implements forward and inverse number-theoretic
// transforms (the finite-field analogue of the DFT) over a prime field, in
// a naive O(n^2) form and a fast O(n log n) butterfly form.
package transform

import (
	"sync"

	"github.com/kentakom1213/fft-ntt/field"
)

// Transform computes forward and inverse transforms over a single field.
// The zero value is not usable; construct with NewFast or NewNaive. A
// Transform is safe for concurrent use: the field context is read-only and
// the twiddle tables are memoized behind a lock.
type Transform struct {
	fld   field.Field
	naive bool

	mu       sync.RWMutex
	twiddles map[int]*twiddleSet
}

// NewFast returns a Transform backed by the iterative in-place butterfly
// core, O(n log n) field multiplications per call.
func NewFast(f field.Field) *Transform {
	return &Transform{fld: f, twiddles: make(map[int]*twiddleSet)}
}

// NewNaive returns a Transform backed by the O(n^2) reference core. It
// computes exactly the same outputs as NewFast and exists for correctness
// testing and as the semantic reference.
func NewNaive(f field.Field) *Transform {
	return &Transform{fld: f, naive: true, twiddles: make(map[int]*twiddleSet)}
}

func (t *Transform) Field() field.Field {
	return t.fld
}

// PadToPowerOfTwo returns (logn, padded) where 2^logn is the smallest power
// of two >= len(xs), and padded is a fresh copy of xs extended with zeros to
// that length. Fails with field.ErrTwoAdicity (propagated from RootOfUnity)
// when the field cannot host a transform of that length. The input is never
// mutated.
func PadToPowerOfTwo(f field.Field, xs []uint64) (int, []uint64, error) {
	logn := 0
	for 1<<logn < len(xs) {
		logn++
	}

	if _, err := f.RootOfUnity(logn); err != nil {
		return 0, nil, err
	}

	padded := make([]uint64, 1<<logn)
	for i, v := range xs {
		padded[i] = f.Reduce(v)
	}

	return logn, padded, nil
}

// Forward transforms xs into its point-value representation. The result has
// length 2^logn >= len(xs); positions past len(xs) represent implicit zero
// coefficients. No normalization is applied.
func (t *Transform) Forward(xs []uint64) ([]uint64, error) {
	logn, out, err := PadToPowerOfTwo(t.fld, xs)
	if err != nil {
		return nil, err
	}

	if t.naive {
		w, err := t.fld.RootOfUnity(logn)
		if err != nil {
			return nil, err
		}

		return naiveCore(t.fld, out, w), nil
	}

	ts, err := t.getTwiddles(logn)
	if err != nil {
		return nil, err
	}
	butterfly(t.fld, out, ts.fwd)

	return out, nil
}

// Inverse applies the transform with the inverse rotation factor and scales
// every element by the inverse of the padded length, so that
// Inverse(Forward(xs)) reproduces xs zero-padded to the next power of two.
func (t *Transform) Inverse(xs []uint64) ([]uint64, error) {
	logn, out, err := PadToPowerOfTwo(t.fld, xs)
	if err != nil {
		return nil, err
	}

	if t.naive {
		w, err := t.fld.RootOfUnity(logn)
		if err != nil {
			return nil, err
		}

		out = naiveCore(t.fld, out, t.fld.Inverse(w))
	} else {
		ts, err := t.getTwiddles(logn)
		if err != nil {
			return nil, err
		}
		butterfly(t.fld, out, ts.inv)
	}

	// scale by n^{-1}
	nInv := t.fld.Inverse(uint64(len(out)))
	for i := range out {
		out[i] = t.fld.Mul(out[i], nInv)
	}

	return out, nil
}
