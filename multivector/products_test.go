package multivector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/signature"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinary_SignatureMismatch ensures every binary operation rejects
// operands of different algebras.
func TestBinary_SignatureMismatch(t *testing.T) {
	a := multivector.Zero[float64](pga3)
	b := multivector.Zero[float64](sta) // same size, different metric

	_, err := a.Add(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
	_, err = a.Inner(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
	_, err = a.Outer(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
	_, err = a.Mul(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
	_, err = a.Geometric(b)
	assert.ErrorIs(t, err, multivector.ErrSignatureMismatch)
}

func TestBinary_Nil(t *testing.T) {
	a := multivector.Zero[float64](pga3)
	_, err := a.Add(nil)
	assert.ErrorIs(t, err, multivector.ErrNilMultivector)
	_, err = a.Mul(nil)
	assert.ErrorIs(t, err, multivector.ErrNilMultivector)
}

func TestLinear(t *testing.T) {
	a := mustFrom[int64](t, vga2, 1, 2, 3, 4)
	b := mustFrom[int64](t, vga2, 10, 20, 30, 40)

	sum := must(a.Add(b))
	assert.Equal(t, []int64{11, 22, 33, 44}, sum.Coefficients())
	diff := must(b.Sub(a))
	assert.Equal(t, []int64{9, 18, 27, 36}, diff.Coefficients())
	assert.Equal(t, []int64{-1, -2, -3, -4}, a.Neg().Coefficients())
	assert.Equal(t, []int64{3, 6, 9, 12}, a.Scale(3).Coefficients())
	assert.Equal(t, []int64{1, 2, 3, 4}, a.Coefficients(), "operands are not mutated")
}

// TestAddScalar touches only the grade-0 slot.
func TestAddScalar(t *testing.T) {
	a := mustFrom[float64](t, vga2, 1, 2, 3, 4)
	assert.Equal(t, []float64{3.5, 2, 3, 4}, a.AddScalar(2.5).Coefficients())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Coefficients())
}

// TestAdd_PropertyBased verifies x + 0 == x, commutativity and
// associativity on integer coefficients, where addition is exact.
func TestAdd_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	size := pga3.Size()
	zero := multivector.Zero[int64](pga3)

	properties.Property("x + 0 == x", prop.ForAll(
		func(xs []int64) bool {
			x := fromSlice(pga3, xs)
			sum, err := x.Add(zero)

			return err == nil && sum.Equal(x)
		},
		genIntCoeffs(size),
	))

	properties.Property("x + y == y + x", prop.ForAll(
		func(xs, ys []int64) bool {
			x, y := fromSlice(pga3, xs), fromSlice(pga3, ys)
			l, err1 := x.Add(y)
			r, err2 := y.Add(x)

			return err1 == nil && err2 == nil && l.Equal(r)
		},
		genIntCoeffs(size), genIntCoeffs(size),
	))

	properties.Property("(x + y) + z == x + (y + z)", prop.ForAll(
		func(xs, ys, zs []int64) bool {
			x, y, z := fromSlice(pga3, xs), fromSlice(pga3, ys), fromSlice(pga3, zs)
			xy, _ := x.Add(y)
			l, err1 := xy.Add(z)
			yz, _ := y.Add(z)
			r, err2 := x.Add(yz)

			return err1 == nil && err2 == nil && l.Equal(r)
		},
		genIntCoeffs(size), genIntCoeffs(size), genIntCoeffs(size),
	))

	properties.TestingRun(t)
}

// TestInner_MetricSign checks e1·e1 = -c² for a generator squaring to -1.
func TestInner_MetricSign(t *testing.T) {
	neg := signature.Must(0, 1, 0)
	for _, c := range []float64{1, 2.5, -3} {
		v := mustFrom[float64](t, neg, 0, c)
		got := must(v.Inner(v))
		assert.Equal(t, -c*c, got, "c=%v", c)
	}

	pos := signature.Must(1, 0, 0)
	v := mustFrom[float64](t, pos, 0, 3)
	assert.Equal(t, 9.0, must(v.Inner(v)))
}

// TestInner_NullAnnihilation ensures blades touching the null generator
// contribute nothing, whatever the other operand holds.
func TestInner_NullAnnihilation(t *testing.T) {
	pga2 := signature.Must(2, 0, 1) // bit 2 is null
	other := mustFrom[float64](t, pga2, 1, 2, 3, 4, 5, 6, 7, 8)
	for _, m := range []blade.Mask{0b100, 0b101, 0b110, 0b111} {
		x := multivector.Zero[float64](pga2)
		require.NoError(t, x.SetBlade(m, 1e6))
		assert.Zero(t, must(x.Inner(other)), "blade %s", blade.Name(m))
		assert.Zero(t, must(other.Inner(x)), "blade %s", blade.Name(m))
	}
}

// TestInner_Mixed sums coincident blades with their metric signs in STA.
func TestInner_Mixed(t *testing.T) {
	// slots: 0 scalar, 1 e1(+), 2 e2(-), 3 e3(-), 4 e4(-), 5 e12 (one negative)
	a := mustFrom[int64](t, sta, 1, 2, 3, 4, 5, 6)
	b := mustFrom[int64](t, sta, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, int64(1+2-3-4-5-6), must(a.Inner(b)))
}

// TestOuter_Antisymmetry checks e_i∧e_j = -(e_j∧e_i) for distinct vectors of
// a positive signature.
func TestOuter_Antisymmetry(t *testing.T) {
	for i := 0; i < vga3.Dim(); i++ {
		for j := 0; j < vga3.Dim(); j++ {
			if i == j {
				continue
			}
			ei := mustBasis[float64](t, vga3, blade.Mask(1)<<i)
			ej := mustBasis[float64](t, vga3, blade.Mask(1)<<j)
			ij := must(ei.Outer(ej))
			ji := must(ej.Outer(ei))
			assert.True(t, ij.Equal(ji.Neg()), "e%d∧e%d", i+1, j+1)

			want := 1.0
			if i > j {
				want = -1
			}
			got := must(ij.Blade(blade.Mask(1)<<i | blade.Mask(1)<<j))
			assert.Equal(t, want, got, "e%d∧e%d", i+1, j+1)
		}
	}
}

// TestOuter_VectorSelfWedge_PropertyBased verifies v∧v == 0 for vectors.
func TestOuter_VectorSelfWedge_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	vga4 := signature.Must(4, 0, 0)

	properties.Property("v∧v == 0", prop.ForAll(
		func(vs []float64) bool {
			v := multivector.Zero[float64](vga4)
			for g, c := range vs {
				_ = v.SetBlade(blade.Mask(1)<<g, c)
			}
			w, err := v.Outer(v)

			return err == nil && w.Equal(multivector.Zero[float64](vga4))
		},
		genCoeffs(4),
	))

	properties.TestingRun(t)
}

// TestOuter_OverlappingPairs checks that pairs sharing generators still
// contribute when the merged blade is not null: e1∧e12 = e2 in VGA2.
func TestOuter_OverlappingPairs(t *testing.T) {
	e1 := mustBasis[int64](t, vga2, 0b01)
	e12 := mustBasis[int64](t, vga2, 0b11)
	e2 := mustBasis[int64](t, vga2, 0b10)

	assert.True(t, must(e1.Outer(e12)).Equal(e2), "e1∧e12")
	assert.True(t, must(e12.Outer(e1)).Equal(e2.Neg()), "e12∧e1")
	assert.True(t, must(e2.Outer(e12)).Equal(e1.Neg()), "e2∧e12")
	assert.True(t, must(e12.Outer(e2)).Equal(e1), "e12∧e2")
}

// TestOuter_MetricSign checks the shared-generator sign in Cl(0,2,0), where
// e1² = e2² = -1: e1∧e12 = e1e1e2 = -e2 and e12∧e2 = e1e2e2 = -e1.
func TestOuter_MetricSign(t *testing.T) {
	q := signature.Must(0, 2, 0)
	e1 := mustBasis[int64](t, q, 0b01)
	e2 := mustBasis[int64](t, q, 0b10)
	e12 := mustBasis[int64](t, q, 0b11)

	assert.True(t, must(e1.Outer(e12)).Equal(e2.Neg()), "e1∧e12")
	assert.True(t, must(e12.Outer(e2)).Equal(e1.Neg()), "e12∧e2")
	assert.True(t, must(e12.Outer(e1)).Equal(e2), "e12∧e1 = e1e2e1 = e2")
	assert.True(t, must(e2.Outer(e12)).Equal(e1), "e2∧e12 = e2e1e2 = e1")
}

// TestOuter_NullMergeDropped pins the reproduced contract: a term whose
// merged blade touches a null generator is dropped, so e1∧e4 vanishes in
// PGA3.
func TestOuter_NullMergeDropped(t *testing.T) {
	e1 := mustBasis[float64](t, pga3, 0b0001)
	e4 := mustBasis[float64](t, pga3, 0b1000)
	w := must(e1.Outer(e4))
	assert.True(t, w.Equal(multivector.Zero[float64](pga3)))

	g := must(e1.Geometric(e4))
	assert.Equal(t, 1.0, must(g.Blade(0b1001)), "the full product keeps e14")
}

// TestMul_PGA3Scenario reproduces the quaternion-like reference sample:
// (-0.25 - 0.7e2)(1 + 0.3e3) = -0.25 - 0.7e2 - 0.075e3 - 0.21e23.
func TestMul_PGA3Scenario(t *testing.T) {
	u := mustFrom[float64](t, pga3, -0.25, 0, -0.7, 0)
	v := mustFrom[float64](t, pga3, 1.0, 0, 0, 0.3)

	got := must(u.Mul(v))
	want := make([]float64, 16)
	want[0] = -0.25
	want[2] = -0.7
	want[3] = -0.075
	want[7] = -0.21 // e23: grade-2 masks 0011,0101,0110 -> slots 5,6,7
	assert.InDeltaSlice(t, want, got.Coefficients(), 1e-12)

	full := must(u.Geometric(v))
	assert.True(t, got.AllClose(full, 1e-12), "mul %v vs geometric %v", got, full)
}

// TestMul_ReferenceCrossCheck_PropertyBased compares Mul with the full
// geometric product on the PGA3 span of scalars and non-null vectors, where
// both definitions coincide: ours == theirs, or both NaN. Both products are
// also checked against sortedProduct, which shares no sign code with them.
func TestMul_ReferenceCrossCheck_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("mul == geometric on scalar+vector", prop.ForAll(
		func(us, vs []float64) bool {
			u := mustFromLead(pga3, us)
			v := mustFromLead(pga3, vs)
			ours, err1 := u.Mul(v)
			theirs, err2 := u.Geometric(v)
			if err1 != nil || err2 != nil {
				return false
			}
			ref := sortedProduct(u, v)

			return ours.AllClose(theirs, 1e-9) && ours.AllClose(ref, 1e-9)
		},
		genCoeffs(4), genCoeffs(4),
	))

	properties.TestingRun(t)
}

// TestMul_NaNPropagates ensures NaN flows through without being reported.
func TestMul_NaNPropagates(t *testing.T) {
	u := mustFrom[float64](t, pga3, math.NaN())
	v := mustFrom[float64](t, pga3, 1)
	w := must(u.Mul(v))
	assert.True(t, w.IsNaN())
}

// TestGeometric_Squares checks e_i² against the metric for every generator.
func TestGeometric_Squares(t *testing.T) {
	for _, sig := range []signature.Signature{vga3, pga3, sta, signature.Must(1, 1, 1)} {
		for i := 0; i < sig.Dim(); i++ {
			e := mustBasis[int64](t, sig, blade.Mask(1)<<i)
			sq := must(e.Geometric(e))
			want := must(sig.Square(i))
			expect := multivector.Zero[int64](sig).AddScalar(int64(want))
			assert.True(t, sq.Equal(expect), "%s e%d² = %v", sig, i+1, sq)
		}
	}
}

// TestGeometric_Quaternion checks i² = j² = k² = ijk = -1 in Cl(0,2,0).
func TestGeometric_Quaternion(t *testing.T) {
	q := signature.Must(0, 2, 0)
	i := mustBasis[int64](t, q, 0b01)
	j := mustBasis[int64](t, q, 0b10)
	k := must(i.Geometric(j))
	assert.Equal(t, []int64{0, 0, 0, 1}, k.Coefficients(), "ij = e12")

	minusOne := multivector.Zero[int64](q).AddScalar(-1)
	for name, x := range map[string]*multivector.Multivector[int64]{"i": i, "j": j, "k": k} {
		assert.True(t, must(x.Geometric(x)).Equal(minusOne), "%s²", name)
	}
	ijk := must(must(i.Geometric(j)).Geometric(k))
	assert.True(t, ijk.Equal(minusOne), "ijk")
	assert.True(t, must(j.Geometric(k)).Equal(i), "jk = i")
	assert.True(t, must(k.Geometric(i)).Equal(j), "ki = j")
}

// TestGeometric_BivectorSquare checks e12² = -1 in VGA2, which Mul misses.
func TestGeometric_BivectorSquare(t *testing.T) {
	e12 := mustBasis[float64](t, vga2, 0b11)
	g := must(e12.Geometric(e12))
	assert.Equal(t, []float64{-1, 0, 0, 0}, g.Coefficients())

	m := must(e12.Mul(e12))
	assert.Equal(t, []float64{1, 0, 0, 0}, m.Coefficients(), "inner ignores the reversion sign")
}

// TestGeometric_PropertyBased checks associativity and distributivity on
// integer coefficients in a signature mixing all three generator kinds.
func TestGeometric_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	sig := signature.Must(2, 1, 1)
	size := sig.Size()

	properties.Property("(ab)c == a(bc)", prop.ForAll(
		func(as, bs, cs []int64) bool {
			a, b, c := fromSlice(sig, as), fromSlice(sig, bs), fromSlice(sig, cs)
			ab, _ := a.Geometric(b)
			l, err1 := ab.Geometric(c)
			bc, _ := b.Geometric(c)
			r, err2 := a.Geometric(bc)

			return err1 == nil && err2 == nil && l.Equal(r)
		},
		genIntCoeffs(size), genIntCoeffs(size), genIntCoeffs(size),
	))

	properties.Property("a(b+c) == ab + ac", prop.ForAll(
		func(as, bs, cs []int64) bool {
			a, b, c := fromSlice(sig, as), fromSlice(sig, bs), fromSlice(sig, cs)
			bc, _ := b.Add(c)
			l, err1 := a.Geometric(bc)
			ab, _ := a.Geometric(b)
			ac, _ := a.Geometric(c)
			r, err2 := ab.Add(ac)

			return err1 == nil && err2 == nil && l.Equal(r)
		},
		genIntCoeffs(size), genIntCoeffs(size), genIntCoeffs(size),
	))

	properties.TestingRun(t)
}

// mustFromLead zero-pads lead to the signature size for property bodies.
func mustFromLead(sig signature.Signature, lead []float64) *multivector.Multivector[float64] {
	coeffs := make([]float64, sig.Size())
	copy(coeffs, lead)

	return fromSlice(sig, coeffs)
}
