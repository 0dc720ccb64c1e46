package field

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testField(t *testing.T, p uint64) *PrimeField {
	t.Helper()

	f, err := NewPrimeField(p)
	require.NoError(t, err)

	return f
}

func randomPolynomial(f Field, rng *rand.Rand, maxLen int) *Polynomial {
	coeffs := make([]uint64, 1+rng.Intn(maxLen))
	for i := range coeffs {
		coeffs[i] = rng.Uint64() % f.Modulus()
	}

	return NewPolynomial(f, coeffs)
}

func TestPolynomialDegree(t *testing.T) {
	a := assert.New(t)
	f := testField(t, 17)

	a.Equal(-1, NewPolynomial(f, []uint64{0, 0}).Degree())
	a.True(NewPolynomial(f, []uint64{0}).IsZero())
	a.Equal(0, NewPolynomial(f, []uint64{5}).Degree())
	a.Equal(2, NewPolynomial(f, []uint64{1, 2, 3, 0}).Degree())
	a.Equal(uint64(3), NewPolynomial(f, []uint64{1, 2, 3, 0}).LeadCoeff())
}

func TestPolynomialEvaluate(t *testing.T) {
	a := assert.New(t)
	f := testField(t, 17)

	// 1 + 2x + 3x^2 at x=2: 1 + 4 + 12 = 17 = 0 (mod 17)
	p := NewPolynomial(f, []uint64{1, 2, 3})
	a.Equal(uint64(0), p.Evaluate(2))
	a.Equal(uint64(1), p.Evaluate(0))
	a.Equal(uint64(6), p.Evaluate(1))
}

func TestPolynomialAddSub(t *testing.T) {
	a := assert.New(t)
	f := testField(t, 17)

	p := NewPolynomial(f, []uint64{1, 2, 3})
	q := NewPolynomial(f, []uint64{16, 1})

	sum := p.Add(q)
	a.Equal([]uint64{0, 3, 3}, sum.ToSlice())

	// (p + q) - q = p
	a.True(sum.Sub(q).Equals(p))

	// addition cancelling the lead coefficient trims the result
	r := NewPolynomial(f, []uint64{0, 0, 14})
	a.Equal(1, p.Add(r).Degree())
}

func TestPolynomialMul(t *testing.T) {
	a := assert.New(t)
	f := testField(t, 5)

	// (1 + x)^2 = 1 + 2x + x^2
	p := NewPolynomial(f, []uint64{1, 1})
	a.Equal([]uint64{1, 2, 1}, p.Mul(p).ToSlice())

	// multiplying by zero yields the zero polynomial
	zero := NewPolynomial(f, []uint64{0})
	a.True(p.Mul(zero).IsZero())
}

func TestPolynomialMulMatchesEvaluation(t *testing.T) {
	a := assert.New(t)
	f := testField(t, 998244353)
	rng := rand.New(rand.NewSource(42))

	for range 16 {
		p := randomPolynomial(f, rng, 24)
		q := randomPolynomial(f, rng, 24)
		prod := p.Mul(q)

		// (p*q)(x) = p(x) * q(x) at random points
		for range 4 {
			x := rng.Uint64() % f.Modulus()
			a.Equal(f.Mul(p.Evaluate(x), q.Evaluate(x)), prod.Evaluate(x))
		}
	}
}
