package field

import (
	"strconv"
	"strings"
)

/*
Polynomial is a dense polynomial over a prime field. Coefficients are
ordered from lowest to highest degree (e.g. [1, 2, 3] is 1 + 2x + 3x^2).
*/
type Polynomial struct {
	f      Field
	coeffs []uint64
}

// NewPolynomial wraps coeffs (not copied) as a polynomial over f. The
// coefficients are reduced into [0, p).
func NewPolynomial(f Field, coeffs []uint64) *Polynomial {
	for i, c := range coeffs {
		coeffs[i] = f.Reduce(c)
	}

	return &Polynomial{f: f, coeffs: coeffs}
}

// Degree returns the degree of the polynomial, or -1 for the zero
// polynomial.
func (p *Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}

	return -1
}

func (p *Polynomial) IsZero() bool {
	return p.Degree() < 0
}

func (p *Polynomial) LeadCoeff() uint64 {
	if pos := p.Degree(); pos >= 0 {
		return p.coeffs[pos]
	}

	return 0
}

func (p *Polynomial) Equals(q *Polynomial) bool {
	if p.f.Modulus() != q.f.Modulus() {
		return false
	}

	d := p.Degree()
	if d != q.Degree() {
		return false
	}

	for i := 0; i <= d; i++ {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

func (p *Polynomial) Copy() *Polynomial {
	inner := make([]uint64, len(p.coeffs))
	copy(inner, p.coeffs)

	return &Polynomial{f: p.f, coeffs: inner}
}

func (p *Polynomial) ToSlice() []uint64 {
	out := make([]uint64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Evaluate computes p(x) by Horner's rule.
func (p *Polynomial) Evaluate(x uint64) uint64 {
	fld := p.f

	result := uint64(0)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = fld.Add(p.coeffs[i], fld.Mul(x, result))
	}

	return result
}

// Add returns p + q as a new polynomial.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return p.combine(q, p.f.Add)
}

// Sub returns p - q as a new polynomial.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.combine(q, p.f.Sub)
}

func (p *Polynomial) combine(q *Polynomial, op func(a, b uint64) uint64) *Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]uint64, n)

	var pv, qv uint64
	for i := 0; i < n; i++ {
		pv, qv = 0, 0
		if i < len(p.coeffs) {
			pv = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			qv = q.coeffs[i]
		}

		out[i] = op(pv, qv)
	}

	res := &Polynomial{f: p.f, coeffs: out}
	res.trim()

	return res
}

// Mul returns p * q by schoolbook convolution, O(n*m) field
// multiplications. It is the reference the fast transform-based product is
// tested against.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return &Polynomial{f: p.f, coeffs: []uint64{0}}
	}

	fld := p.f
	out := make([]uint64, len(p.coeffs)+len(q.coeffs)-1)

	// out[i+j] += p[i] * q[j]
	for i, pi := range p.coeffs {
		if pi == 0 {
			continue
		}

		for j, qj := range q.coeffs {
			out[i+j] = fld.Add(out[i+j], fld.Mul(pi, qj))
		}
	}

	res := &Polynomial{f: fld, coeffs: out}
	res.trim()

	return res
}

func (p *Polynomial) trim() {
	lead := p.Degree()
	if lead < 0 {
		p.coeffs = p.coeffs[:1]
		p.coeffs[0] = 0

		return
	}

	p.coeffs = p.coeffs[:lead+1]
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	bldr := strings.Builder{}
	for i := p.Degree(); i >= 0; i-- {
		if p.coeffs[i] == 0 {
			continue
		}

		if bldr.Len() > 0 {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(strconv.FormatUint(p.coeffs[i], 10))
		if i > 0 {
			bldr.WriteString("*x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}
