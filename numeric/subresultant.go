package numeric

import "fmt"

// Content returns the GCD of p's coefficients, zero for the zero
// polynomial. The result is always non-negative.
func Content[T Signed](p Polynomial[T]) T {
	return GCDRange(p.coeffs)
}

// PrimitivePart returns p divided by its content. The primitive part keeps
// p's sign; only the common scalar factor is removed.
func PrimitivePart[T Signed](p Polynomial[T]) (Polynomial[T], error) {
	if p.IsZero() {
		return p, nil
	}
	return p.DivScalar(Content(p))
}

// SubresultantGCD computes the greatest common divisor of two integer
// polynomials using the subresultant pseudo-remainder sequence, Knuth's
// Algorithm C (TAOCP vol. 2, 4.6.1). Unlike the naive Euclidean scheme the
// intermediate coefficients stay polynomially bounded, since each
// pseudo-remainder is divided down by the accumulated g·h^δ factor.
//
// The result is primitive up to the common content of u and v, with its
// leading coefficient normalized positive. Coprime inputs yield the
// constant polynomial gcd(content(u), content(v)).
func SubresultantGCD[T Signed](u, v Polynomial[T]) (Polynomial[T], error) {
	switch {
	case u.IsZero() && v.IsZero():
		return Polynomial[T]{}, nil
	case u.IsZero():
		return normalizeSign(v), nil
	case v.IsZero():
		return normalizeSign(u), nil
	}
	if u.Degree() < v.Degree() {
		u, v = v, u
	}

	d := GCD(Content(u), Content(v))
	u, err := PrimitivePart(u)
	if err != nil {
		return Polynomial[T]{}, err
	}
	v, err = PrimitivePart(v)
	if err != nil {
		return Polynomial[T]{}, err
	}

	var g, h T = 1, 1
	for {
		delta := u.Degree() - v.Degree()
		r, err := PseudoRemainder(u, v)
		if err != nil {
			return Polynomial[T]{}, err
		}
		if r.IsZero() {
			pp, err := PrimitivePart(v)
			if err != nil {
				return Polynomial[T]{}, err
			}
			return normalizeSign(pp.MulScalar(d)), nil
		}
		if r.Degree() == 0 {
			// A non-zero constant remainder means u and v share no
			// polynomial factor; only the scalar content survives.
			return NewPolynomial(d), nil
		}

		u = v
		v, err = r.DivScalar(g * intPow(h, delta))
		if err != nil {
			return Polynomial[T]{}, err
		}
		g = absVal(u.LeadingCoefficient())
		switch {
		case delta == 0:
			// h unchanged.
		case delta == 1:
			h = g
		default:
			// h = g^δ / h^(δ-1), exact by the subresultant theory.
			num := intPow(g, delta)
			den := intPow(h, delta-1)
			if den == 0 || num%den != 0 {
				return Polynomial[T]{}, fmt.Errorf("numeric: subresultant invariant violated: %v not divisible by %v", num, den)
			}
			h = num / den
		}
	}
}

// normalizeSign flips p so its leading coefficient is positive.
func normalizeSign[T Signed](p Polynomial[T]) Polynomial[T] {
	if p.LeadingCoefficient() < 0 {
		return p.Neg()
	}
	return p
}

func intPow[T Signed](base T, exp int) T {
	var out T = 1
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}
