package transform

import "github.com/kentakom1213/fft-ntt/field"

type twiddleSet struct {
	// For each stage s (m = 2<<s), fwd[s] (and inv[s]) has length m/2
	// holding wm^j where wm = w^(n/m) for forward and wm = wInv^(n/m) for
	// inverse, w the primitive 2^logn-th root of unity.
	fwd [][]uint64
	inv [][]uint64
}

func (t *Transform) getTwiddles(logn int) (*twiddleSet, error) {
	t.mu.RLock()
	if ts, ok := t.twiddles[logn]; ok {
		t.mu.RUnlock()
		return ts, nil
	}
	t.mu.RUnlock()

	// Build outside the lock.
	w, err := t.fld.RootOfUnity(logn)
	if err != nil {
		return nil, err
	}
	wInv := t.fld.Inverse(w)

	n := 1 << logn

	var fwd [][]uint64
	var inv [][]uint64

	// stages: m = 2,4,8,...,n  => stage index s = 0..(logn-1)
	for m := 2; m <= n; m = m << 1 {
		half := m >> 1
		wmF := t.fld.Pow(w, uint64(n/m))    // forward stage root
		wmI := t.fld.Pow(wInv, uint64(n/m)) // inverse stage root

		rowF := make([]uint64, half)
		rowI := make([]uint64, half)

		wF := uint64(1)
		wI := uint64(1)
		for j := 0; j < half; j++ {
			rowF[j] = wF
			rowI[j] = wI
			wF = t.fld.Mul(wF, wmF)
			wI = t.fld.Mul(wI, wmI)
		}

		fwd = append(fwd, rowF)
		inv = append(inv, rowI)
	}

	ts := &twiddleSet{fwd: fwd, inv: inv}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Another goroutine may have won the race; keep the first one.
	if existing, ok := t.twiddles[logn]; ok {
		return existing, nil
	}

	t.twiddles[logn] = ts

	return ts, nil
}

// butterfly runs the iterative in-place radix-2 transform of xs (length a
// power of two) with the per-stage twiddle rows in ws. With forward rows it
// computes out[i] = sum_j xs[j] * w^(i*j); with inverse rows the same sum
// over wInv, without the final 1/n scaling.
func butterfly(f field.Field, xs []uint64, ws [][]uint64) {
	n := len(xs)

	// Bit-reversal permutation (in place; allocation-free)
	bitReverseInPlace(xs)

	// Stages: m = 2,4,8,...,n  with precomputed twiddles per stage.
	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		row := ws[s] // length = half
		for k := 0; k < n; k += m {
			// breadth-first butterflies
			for j := 0; j < half; j++ {
				u := xs[k+j]
				v := f.Mul(row[j], xs[k+j+half])
				xs[k+j] = f.Add(u, v)
				xs[k+j+half] = f.Sub(u, v)
			}
		}
	}
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}
		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
