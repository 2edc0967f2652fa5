package numeric

import (
	"fmt"
	"strings"
)

// Signed constrains polynomial coefficients; polynomial arithmetic needs
// negation, so unsigned domains are excluded.
type Signed interface {
	~int | ~int32 | ~int64
}

// Polynomial is a dense polynomial over integer coefficients, stored in
// ascending degree order: Coefficient(i) multiplies x^i. The zero value is
// the zero polynomial. Polynomials are immutable values; every operation
// returns a fresh result.
type Polynomial[T Signed] struct {
	coeffs []T
}

// NewPolynomial builds a polynomial from coefficients in ascending degree
// order. Trailing zero coefficients are trimmed.
func NewPolynomial[T Signed](coeffs ...T) Polynomial[T] {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	if end == 0 {
		return Polynomial[T]{}
	}
	out := make([]T, end)
	copy(out, coeffs[:end])
	return Polynomial[T]{coeffs: out}
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 0
}

// Degree returns the degree of p. The zero polynomial reports -1.
func (p Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns the coefficient of x^i, with zero for any i outside
// the stored range.
func (p Polynomial[T]) Coefficient(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest-degree term,
// zero for the zero polynomial.
func (p Polynomial[T]) LeadingCoefficient() T {
	if p.IsZero() {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// ConstantCoefficient returns the coefficient of x^0.
func (p Polynomial[T]) ConstantCoefficient() T {
	return p.Coefficient(0)
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := max(len(p.coeffs), len(q.coeffs))
	sum := make([]T, n)
	for i := range sum {
		sum[i] = p.Coefficient(i) + q.Coefficient(i)
	}
	return NewPolynomial(sum...)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = -c
	}
	return Polynomial[T]{coeffs: out}
}

// Mul returns the product p·q by schoolbook convolution.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[T]{}
	}
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return NewPolynomial(out...)
}

// MulScalar returns p scaled by k.
func (p Polynomial[T]) MulScalar(k T) Polynomial[T] {
	if k == 0 {
		return Polynomial[T]{}
	}
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * k
	}
	return Polynomial[T]{coeffs: out}
}

// DivScalar divides every coefficient by k, which must divide each of them
// exactly; the subresultant recurrence guarantees exactness at its call
// sites.
func (p Polynomial[T]) DivScalar(k T) (Polynomial[T], error) {
	if k == 0 {
		return Polynomial[T]{}, fmt.Errorf("numeric: polynomial division by zero scalar")
	}
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		if c%k != 0 {
			return Polynomial[T]{}, fmt.Errorf("numeric: coefficient %v not divisible by %v", c, k)
		}
		out[i] = c / k
	}
	return Polynomial[T]{coeffs: out}, nil
}

// shift returns p·x^n.
func (p Polynomial[T]) shift(n int) Polynomial[T] {
	if p.IsZero() {
		return p
	}
	out := make([]T, n+len(p.coeffs))
	copy(out[n:], p.coeffs)
	return Polynomial[T]{coeffs: out}
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i, c := range p.coeffs {
		if q.coeffs[i] != c {
			return false
		}
	}
	return true
}

// String renders p in conventional descending-degree notation.
func (p Polynomial[T]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		if b.Len() > 0 {
			if c > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
				c = -c
			}
		}
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%v", c)
		case c == 1 || c == -1:
			if c == -1 {
				b.WriteString("-")
			}
			b.WriteString(term(i))
		default:
			fmt.Fprintf(&b, "%v", c)
			b.WriteString(term(i))
		}
	}
	return b.String()
}

func term(degree int) string {
	if degree == 1 {
		return "x"
	}
	return fmt.Sprintf("x^%d", degree)
}

// PseudoRemainder returns prem(u, v): the remainder of ℓ^(δ+1)·u divided by
// v, where ℓ is v's leading coefficient and δ = deg(u) − deg(v). Scaling by
// ℓ^(δ+1) keeps the division exact over the integers, which is what the
// subresultant recurrence relies on. v must be non-zero.
func PseudoRemainder[T Signed](u, v Polynomial[T]) (Polynomial[T], error) {
	if v.IsZero() {
		return Polynomial[T]{}, fmt.Errorf("numeric: pseudo-remainder by zero polynomial")
	}
	if u.Degree() < v.Degree() {
		return u, nil
	}

	l := v.LeadingCoefficient()
	// One scaling per elimination step; the loop may finish early when the
	// degree drops by more than one, so the balance is applied afterwards.
	scalings := u.Degree() - v.Degree() + 1
	r := u
	for !r.IsZero() && r.Degree() >= v.Degree() {
		d := r.Degree() - v.Degree()
		lead := r.LeadingCoefficient()
		r = r.MulScalar(l).Sub(v.shift(d).MulScalar(lead))
		scalings--
	}
	for ; scalings > 0; scalings-- {
		r = r.MulScalar(l)
	}
	return r, nil
}
