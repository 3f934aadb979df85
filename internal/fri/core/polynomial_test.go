package core

import "testing"

func ints(field *Field, vs ...int64) []*Element {
	out := make([]*Element, len(vs))
	for i, v := range vs {
		out[i] = field.NewElementFromInt64(v)
	}
	return out
}

func TestPolynomialEvaluateHorner(t *testing.T) {
	// Scenario 1: P = [1, 2, 3], evaluate at x = 2: result 17.
	p := NewPolynomial(BLS12381Field, ints(BLS12381Field, 1, 2, 3))
	x := BLS12381Field.NewElementFromInt64(2)

	got := p.Evaluate(x)
	want := BLS12381Field.NewElementFromInt64(17)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPolynomialEvaluateSequence(t *testing.T) {
	// Scenario 2: P = [1, 2, 3] at [1, 2, 3]: [6, 17, 34].
	p := NewPolynomial(BLS12381Field, ints(BLS12381Field, 1, 2, 3))
	xs := ints(BLS12381Field, 1, 2, 3)

	got := p.EvaluateSequence(xs)
	want := ints(BLS12381Field, 6, 17, 34)

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("index %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPolynomialFold(t *testing.T) {
	// Scenario 6: P = [1,2,3,4,5,6], beta = 2: result coefficients [5, 11, 17], degree 2.
	p := NewPolynomial(BLS12381Field, ints(BLS12381Field, 1, 2, 3, 4, 5, 6))
	beta := BLS12381Field.NewElementFromInt64(2)

	folded := p.Fold(beta)

	if folded.Degree() != 2 {
		t.Errorf("expected degree 2, got %d", folded.Degree())
	}

	want := ints(BLS12381Field, 5, 11, 17)
	got := folded.Coefficients()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("coefficient %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPolynomialFoldHalvesDegree(t *testing.T) {
	// Invariant 1: degree(P.fold(beta)) == floor(degree(P)/2) for several shapes.
	cases := []struct {
		coeffs []int64
		want   int
	}{
		{[]int64{1, 2, 3}, 1},
		{[]int64{1, 2, 3, 4}, 1},
		{[]int64{1, 2, 3, 4, 5}, 2},
		{[]int64{1, 2, 3, 3, 3, 3, 3}, 3},
	}

	beta := BLS12381Field.NewElementFromInt64(5)
	for _, c := range cases {
		p := NewPolynomial(BLS12381Field, ints(BLS12381Field, c.coeffs...))
		folded := p.Fold(beta)
		if folded.Degree() != c.want {
			t.Errorf("coeffs %v: got degree %d, want %d", c.coeffs, folded.Degree(), c.want)
		}
	}
}

func TestPolynomialFoldEvenOddIdentity(t *testing.T) {
	// Invariant 2: fold(beta).evaluate(x^2) == Pe(x^2) + beta*Po(x^2).
	p := NewPolynomial(BLS12381Field, ints(BLS12381Field, 1, 2, 3, 4, 5, 6))
	beta := BLS12381Field.NewElementFromInt64(2)

	var even, odd []*Element
	for i, c := range p.Coefficients() {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	pe := NewPolynomial(BLS12381Field, even)
	po := NewPolynomial(BLS12381Field, odd)

	x := BLS12381Field.NewElementFromInt64(3)
	xSquared := x.Mul(x)

	folded := p.Fold(beta)
	lhs := folded.Evaluate(xSquared)
	rhs := pe.Evaluate(xSquared).Add(beta.Mul(po.Evaluate(xSquared)))

	if !lhs.Equal(rhs) {
		t.Errorf("fold identity violated: got %s, want %s", lhs, rhs)
	}
}

func TestPolynomialNormalizeIdempotent(t *testing.T) {
	// Invariant 6: trimming trailing zeros is idempotent.
	raw := ints(BLS12381Field, 1, 2, 0, 0)
	once := NewPolynomial(BLS12381Field, raw)
	twice := NewPolynomial(BLS12381Field, once.Coefficients())

	if once.Degree() != twice.Degree() {
		t.Errorf("normalize not idempotent: %d vs %d", once.Degree(), twice.Degree())
	}
}

func TestPolynomialZeroDegreePanics(t *testing.T) {
	p := NewPolynomial(BLS12381Field, nil)
	if !p.IsZero() {
		t.Fatal("expected zero polynomial")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected Degree to panic on the zero polynomial")
		}
	}()
	p.Degree()
}
