package transform

// Convolve returns the polynomial product of the coefficient sequences a
// and b: out[k] = sum_{i+j=k} a[i]*b[j] (mod p), of length
// len(a)+len(b)-1. Both inputs are transformed at a power-of-two length
// that covers the product, multiplied pointwise and transformed back, so
// no cyclic wraparound reaches the result. Fails with field.ErrTwoAdicity
// when the field cannot host a transform of that length.
func (t *Transform) Convolve(a, b []uint64) ([]uint64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}

	n := len(a) + len(b) - 1

	fa, err := t.Forward(extend(a, n))
	if err != nil {
		return nil, err
	}

	fb, err := t.Forward(extend(b, n))
	if err != nil {
		return nil, err
	}

	for i := range fa {
		fa[i] = t.fld.Mul(fa[i], fb[i])
	}

	out, err := t.Inverse(fa)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

func extend(xs []uint64, n int) []uint64 {
	out := make([]uint64, n)
	copy(out, xs)

	return out
}
