// Package field implements arithmetic over prime-order finite fields,
// including the root-of-unity machinery needed by power-of-two NTTs.
package field

import (
	"errors"
	"fmt"
	"math/bits"
)

type Field interface {
	Equals(a, b uint64) bool
	Add(a, b uint64) uint64
	Sub(a, b uint64) uint64
	Mul(a, b uint64) uint64
	Pow(base, exp uint64) uint64

	Neg(a uint64) uint64
	Inverse(a uint64) uint64
	Reduce(a uint64) uint64

	Modulus() uint64
	Generator() uint64
	TwoAdicity() int
	RootOfUnity(logn int) (uint64, error)
}

// PrimeField is the arithmetic context for a single prime modulus p.
// It is immutable after construction and safe for concurrent use.
type PrimeField struct {
	prime        uint64
	generator    uint64 // smallest primitive root of p
	generatorInv uint64
	twoAdicity   int    // largest k with 2^k | p-1
	oddCofactor  uint64 // (p-1) / 2^k
	factors      []uint64
}

var (
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit primes")

	// ErrInvalidModulus is returned by NewPrimeField when the modulus is
	// composite. The package only supports prime-order fields.
	ErrInvalidModulus = errors.New("modulus is not prime")

	// ErrTwoAdicity is returned when a requested transform order 2^i does not
	// divide p-1, i.e. the prime does not have enough factors of 2 in p-1.
	ErrTwoAdicity = errors.New("prime does not have enough factors of 2 in p-1")
)

const maxBitUsage = 63

// NewPrimeField validates that prime is indeed prime (trial division up to
// its square root), factorizes prime-1 and derives the smallest primitive
// root along with the 2-adic split p-1 = 2^k * m, m odd.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	if !isPrime(prime) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidModulus, prime)
	}

	factors := factorize(prime - 1)

	twoAdicity := 0
	oddCofactor := prime - 1
	if len(factors) > 0 && factors[0].prime == 2 {
		twoAdicity = factors[0].exp
		oddCofactor >>= uint(twoAdicity)
	}

	f := &PrimeField{
		prime:       prime,
		generator:   findGenerator(prime, factors),
		twoAdicity:  twoAdicity,
		oddCofactor: oddCofactor,
		factors:     distinctPrimes(factors),
	}
	f.generatorInv = f.Inverse(f.generator)

	return f, nil
}

// Modulus implements Field.
func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns the smallest primitive root of the modulus: its powers
// enumerate every non-zero field element exactly once before repeating.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// GeneratorInverse returns the multiplicative inverse of Generator().
func (f *PrimeField) GeneratorInverse() uint64 {
	return f.generatorInv
}

// TwoAdicity returns the largest k such that 2^k divides p-1. It bounds the
// maximum power-of-two transform length the field supports.
func (f *PrimeField) TwoAdicity() int {
	return f.twoAdicity
}

// OddCofactor returns m = (p-1) / 2^TwoAdicity().
func (f *PrimeField) OddCofactor() uint64 {
	return f.oddCofactor
}

// Factors returns the distinct prime factors of p-1, smallest first.
func (f *PrimeField) Factors() []uint64 {
	out := make([]uint64, len(f.factors))
	copy(out, f.factors)

	return out
}

// RootOfUnity returns a primitive 2^logn-th root of unity: a value w with
// w^(2^logn) = 1 and w^(2^(logn-1)) != 1 (mod p). Fails with ErrTwoAdicity
// when logn exceeds the field's 2-adicity.
func (f *PrimeField) RootOfUnity(logn int) (uint64, error) {
	if logn < 0 || logn > f.twoAdicity {
		return 0, fmt.Errorf("%w: order 2^%d, 2-adicity %d", ErrTwoAdicity, logn, f.twoAdicity)
	}

	// w = g^(m * 2^(k-logn)). The exponent divides p-1 with quotient 2^logn,
	// so w has multiplicative order exactly 2^logn.
	return f.Pow(f.generator, f.oddCofactor<<uint(f.twoAdicity-logn)), nil
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

func (f *PrimeField) Neg(a uint64) uint64 {
	a = f.Reduce(a)
	if a == 0 {
		return 0
	}

	return f.prime - a
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	a, b = f.Reduce(a), f.Reduce(b)
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

// fieldMul assumes a, b < mod < 2^63, so the high word of the 128-bit
// product stays below mod and bits.Div64 cannot panic.
func fieldMul(a, b, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)

	return rem
}

// Pow computes base^exp (mod p) by square-and-multiply, O(log exp)
// multiplications.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	return powMod(f.Reduce(base), exp, f.prime)
}

func powMod(base, exp, mod uint64) uint64 {
	x := uint64(1) % mod
	for exp > 0 {
		if exp%2 == 1 { // If exponent is odd, multiply base with x
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod) // Square the base
		exp /= 2                         // Halve the exponent
	}

	return x
}

// Inverse returns a^(p-2) (mod p), the multiplicative inverse by Fermat's
// little theorem. The caller must never invert the zero element; doing so
// panics rather than silently returning 0^(p-2) = 0.
func (f *PrimeField) Inverse(a uint64) uint64 {
	a = f.Reduce(a)
	if a == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}

func (f *PrimeField) Equals(a, b uint64) bool {
	return f.Reduce(a) == f.Reduce(b)
}
