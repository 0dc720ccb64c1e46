package field

// primePower is a single term p^exp of a factorization.
type primePower struct {
	prime uint64
	exp   int
}

// isPrime reports whether n is prime, by trial division up to the square
// root of n.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}

	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// factorize returns the prime-power factorization of x, smallest prime
// first. factorize(0) and factorize(1) return nil.
func factorize(x uint64) []primePower {
	if x < 2 {
		return nil
	}

	var res []primePower

	appendFactor := func(p uint64) {
		cnt := 0
		for x%p == 0 {
			cnt++
			x /= p
		}

		if cnt > 0 {
			res = append(res, primePower{prime: p, exp: cnt})
		}
	}

	appendFactor(2)
	for p := uint64(3); p*p <= x; p += 2 {
		appendFactor(p)
	}

	// Whatever is left after dividing out every candidate below sqrt(x) is
	// itself prime.
	if x > 1 {
		res = append(res, primePower{prime: x, exp: 1})
	}

	return res
}

// findGenerator scans upward from 1 for the smallest primitive root of p,
// given the factorization of p-1. A candidate x generates the multiplicative
// group iff x^((p-1)/q) != 1 (mod p) for every prime factor q of p-1.
// The group is cyclic, so the scan always terminates for prime p.
func findGenerator(p uint64, factors []primePower) uint64 {
	for x := uint64(1); x < p; x++ {
		ok := true
		for _, f := range factors {
			if powMod(x, (p-1)/f.prime, p) == 1 {
				ok = false
				break
			}
		}

		if ok {
			return x
		}
	}

	// Unreachable for prime p; the p=2 trivial group is caught by the scan
	// returning x=1.
	return 0
}

func distinctPrimes(factors []primePower) []uint64 {
	out := make([]uint64, len(factors))
	for i, f := range factors {
		out[i] = f.prime
	}

	return out
}
