package core

// Polynomial is a dense, low-degree-first coefficient vector over a Field.
// The zero polynomial is represented by an empty coefficient slice; its
// degree is undefined and callers must guard against it.
type Polynomial struct {
	field        *Field
	coefficients []*Element
}

// NewPolynomial builds a polynomial from coefficients, trimming trailing
// (high-degree) zeros so the last coefficient is non-zero unless the
// polynomial is the zero polynomial.
func NewPolynomial(field *Field, coefficients []*Element) *Polynomial {
	trimmed := trimTrailingZeros(coefficients)
	return &Polynomial{field: field, coefficients: trimmed}
}

func trimTrailingZeros(coefficients []*Element) []*Element {
	n := len(coefficients)
	for n > 0 && coefficients[n-1].IsZero() {
		n--
	}
	out := make([]*Element, n)
	copy(out, coefficients[:n])
	return out
}

// IsZero reports whether this is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coefficients) == 0
}

// Degree returns len(coefficients)-1. It is undefined (and panics) on the
// zero polynomial; callers must check IsZero first.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		panic("core: degree of the zero polynomial is undefined")
	}
	return len(p.coefficients) - 1
}

// Field returns the field this polynomial is defined over.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Coefficients returns a copy of the polynomial's coefficients, low-degree
// first.
func (p *Polynomial) Coefficients() []*Element {
	out := make([]*Element, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Evaluate computes p(x) by Horner-style accumulation: sum_i a_i * x^i.
func (p *Polynomial) Evaluate(x *Element) *Element {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// EvaluateSequence maps Evaluate over a sequence of points; the output has
// the same length as the input.
func (p *Polynomial) EvaluateSequence(xs []*Element) []*Element {
	out := make([]*Element, len(xs))
	for i, x := range xs {
		out[i] = p.Evaluate(x)
	}
	return out
}

// PadPair returns two coefficient slices of equal length for a and b,
// the shorter padded with field zeros on the high end. It does not
// renormalize, and is only ever used internally by Fold.
func PadPair(field *Field, a, b []*Element) ([]*Element, []*Element) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make([]*Element, n)
	pb := make([]*Element, n)
	zero := field.Zero()
	for i := 0; i < n; i++ {
		if i < len(a) {
			pa[i] = a[i]
		} else {
			pa[i] = zero
		}
		if i < len(b) {
			pb[i] = b[i]
		} else {
			pb[i] = zero
		}
	}
	return pa, pb
}

// Fold is the FRI folding operator. Splitting coefficients into the
// even-indexed e = (a0, a2, a4, ...) and odd-indexed o = (a1, a3, ...)
// sub-sequences, Fold returns the polynomial with coefficients
// e_i + beta*o_i. This corresponds to the univariate identity
// f(x) = f_e(x^2) + x*f_o(x^2): f_new(y) := f_e(y) + beta*f_o(y) halves
// degree and respects the symmetric domain shape.
func (p *Polynomial) Fold(beta *Element) *Polynomial {
	var even, odd []*Element
	for i, c := range p.coefficients {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}

	betaOdd := make([]*Element, len(odd))
	for i, c := range odd {
		betaOdd[i] = c.Mul(beta)
	}

	evenPadded, oddPadded := PadPair(p.field, even, betaOdd)

	folded := make([]*Element, len(evenPadded))
	for i := range evenPadded {
		folded[i] = evenPadded[i].Add(oddPadded[i])
	}

	return NewPolynomial(p.field, folded)
}
