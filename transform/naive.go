package transform

import "github.com/kentakom1213/fft-ntt/field"

// naiveCore evaluates out[i] = sum_j xs[j] * w^(i*j) (mod p) directly,
// O(n^2) field multiplications. Rotation factors are accumulated
// incrementally instead of calling Pow per term.
func naiveCore(f field.Field, xs []uint64, w uint64) []uint64 {
	n := len(xs)
	out := make([]uint64, n)

	wi := uint64(1) // w^i
	for i := range out {
		acc := uint64(0)
		rot := uint64(1) // w^(i*j)
		for j := 0; j < n; j++ {
			acc = f.Add(acc, f.Mul(xs[j], rot))
			rot = f.Mul(rot, wi)
		}

		out[i] = acc
		wi = f.Mul(wi, w)
	}

	return out
}
