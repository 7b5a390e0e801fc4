package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewNTT_RejectsNonPowerOfTwoDegree covers the InvalidParameter path
// when N is not a power of two.
func TestNewNTT_RejectsNonPowerOfTwoDegree(t *testing.T) {
	_, err := NewNTT(6, 13)
	require.Error(t, err)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, InvalidParameter, rerr.Kind)
}

// TestNewNTT_RejectsBadModulus covers the InvalidParameter path when q is
// not congruent to 1 modulo 2N.
func TestNewNTT_RejectsBadModulus(t *testing.T) {
	_, err := NewNTT(4, 13)
	require.Error(t, err)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, InvalidParameter, rerr.Kind)
}

// TestNewNTT_N4Q17 is S1 from the worked scenarios: N=4, q=17, a valid NTT
// prime with psi=9 as the first root the generator search accepts (g=2
// yields 4, whose order is only N; g=3 yields 9).
func TestNewNTT_N4Q17(t *testing.T) {
	n, err := NewNTT(4, 17)
	require.NoError(t, err)
	require.True(t, n.IsValid())

	assert.Equal(t, int64(9), n.psi)
	assert.Equal(t, []int64{1, 9, 13, 15}, n.psiPow)
	assert.Equal(t, []int64{1, 2, 4, 8}, n.psiInvPow)
	assert.Equal(t, int64(13), n.nInv)
}

// TestForwardBackward_RoundTrip checks invariant 2: Backward(Forward(a)) == a
// for arbitrary coefficient vectors, canonicalised to [0, q).
func TestForwardBackward_RoundTrip(t *testing.T) {
	n, err := NewNTT(4, 17)
	require.NoError(t, err)

	cases := [][]int64{
		{1, 2, 3, 4},
		{0, 0, 0, 0},
		{16, 16, 16, 16},
		{0, 1, 0, 0},
	}

	for _, a := range cases {
		A, err := n.Forward(a)
		require.NoError(t, err)
		back, err := n.Backward(A)
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
}

// TestMultiply_S2 is the S2 worked scenario: negacyclic multiplication for
// N=4, q=17, checked against identity, X*X and X^3*X^3.
func TestMultiply_S2(t *testing.T) {
	n, err := NewNTT(4, 17)
	require.NoError(t, err)

	identity := []int64{1, 0, 0, 0}
	a := []int64{1, 2, 3, 4}
	got, err := n.Multiply(a, identity)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	x := []int64{0, 1, 0, 0}
	got, err = n.Multiply(x, x)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 0}, got)

	x3 := []int64{0, 0, 0, 1}
	got, err = n.Multiply(x3, x3)
	require.NoError(t, err)
	// X^3 * X^3 = X^6 = -X^2 mod (X^4+1), and -1 mod 17 = 16.
	assert.Equal(t, []int64{0, 0, 16, 0}, got)
}

// TestFindNTTPrime_S3 checks the smallest-prime search for a couple of
// small degrees.
func TestFindNTTPrime_S3(t *testing.T) {
	q, err := FindNTTPrime(4)
	require.NoError(t, err)
	assert.Equal(t, int64(17), q)

	q, err = FindNTTPrime(8)
	require.NoError(t, err)
	assert.Equal(t, int64(17), q)
}

// TestAddSubtractScalarMul covers the plain coefficient-wise operations and
// their canonicalisation to [0, q).
func TestAddSubtractScalarMul(t *testing.T) {
	n, err := NewNTT(4, 17)
	require.NoError(t, err)

	sum, err := n.Add([]int64{16, 16, 0, 0}, []int64{1, 2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 0, 0}, sum)

	diff, err := n.Subtract([]int64{0, 0, 0, 0}, []int64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{16, 0, 0, 0}, diff)

	scaled, err := n.ScalarMul([]int64{1, 2, 3, 4}, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 10, 15, 3}, scaled)
}

// TestShapeMismatch checks invariant on length checking across operations.
func TestShapeMismatch(t *testing.T) {
	n, err := NewNTT(4, 17)
	require.NoError(t, err)

	_, err = n.Forward([]int64{1, 2, 3})
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ShapeMismatch, rerr.Kind)

	_, err = n.Add([]int64{1, 2, 3, 4}, []int64{1, 2})
	require.Error(t, err)
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ShapeMismatch, rerr.Kind)
}

// TestEqual exercises the go-cmp-backed Equal method.
func TestEqual(t *testing.T) {
	a, err := NewNTT(4, 17)
	require.NoError(t, err)
	b, err := NewNTT(4, 17)
	require.NoError(t, err)
	c, err := NewNTT(8, 17)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
