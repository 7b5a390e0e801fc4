// Package bfv implements the multiplication and relinearization steps of
// the Brakerski-Fan-Vercauteren homomorphic encryption scheme, layered on
// top of the ring package's NTT engine. It is grounded on the structure of
// tuneinsight-lattigo/bfv/evaluator.go's tensorAndRescale and relinearize,
// narrowed to the single-modulus, single-key variant this core targets:
// key generation, encryption and decryption stay out of scope, matching
// the rest of the teacher's evaluator (which also treats keys and
// ciphertexts produced elsewhere as opaque inputs).
package bfv

import (
	"math/bits"

	"github.com/dmmjrgif/my-fhe-library/ring"
	"github.com/google/go-cmp/cmp"
)

// Bfv owns an NTT engine and the scalar parameters (N, q, t, Δ) needed to
// multiply and relinearize BFV ciphertexts. All fields are populated once
// in NewBFV and read-only thereafter.
type Bfv struct {
	ntt   *ring.Ntt
	t     int64
	delta int64
}

// NewBFV constructs a Bfv multiplier for the given ring degree N, ciphertext
// modulus q and plaintext modulus t. Construction fails with the same
// *ring.Error the underlying NTT engine would return if (N, q) do not form
// a valid NTT-friendly pair.
func NewBFV(N int, q, t int64) (*Bfv, error) {
	ntt, err := ring.NewNTT(N, q)
	if err != nil {
		return nil, err
	}
	if !ntt.IsValid() {
		return nil, &ring.Error{
			Kind: ring.InitializationFailed,
			Msg:  "NTT engine constructed but not valid",
		}
	}

	return &Bfv{
		ntt:   ntt,
		t:     t,
		delta: q / t,
	}, nil
}

// N returns the ring degree.
func (b *Bfv) N() int { return b.ntt.N() }

// Q returns the ciphertext modulus.
func (b *Bfv) Q() int64 { return b.ntt.Q() }

// T returns the plaintext modulus.
func (b *Bfv) T() int64 { return b.t }

// Delta returns the precomputed scaling factor Δ = ⌊q/t⌋.
func (b *Bfv) Delta() int64 { return b.delta }

// Equal reports whether b and other expose the same public parameters.
func (b *Bfv) Equal(other *Bfv) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.ntt.Equal(other.ntt) && cmp.Equal(b.t, other.t)
}

// scaleDown rescales each coefficient of poly by t/q with round-half-up,
// using a 128-bit intermediate product: v = coeff*t, scaled = v div q,
// incremented when the remainder is at least half of q, canonicalised to
// [0, q) only at the end. Grounded directly on the original fhe_cpp
// bfv_mult.cpp's scale_down (`__int128 val = poly[i]; scaled = (val*t)/q;
// ...`): the coefficient is scaled raw, never pre-reduced, matching
// tuneinsight-lattigo/ring/int.go's (*Int).DivRound, which likewise rounds
// the unreduced value and only fixes up sign at the end.
func (b *Bfv) scaleDown(poly []int64) []int64 {
	q := b.ntt.Q()
	t := b.t
	out := make([]int64, len(poly))

	for i, c := range poly {
		hi, lo := bits.Mul64(uint64(c), uint64(t))
		div, rem := bits.Div64(hi, lo, uint64(q))

		scaled := int64(div)
		if rem*2 >= uint64(q) {
			scaled++
		}

		scaled %= q
		if scaled < 0 {
			scaled += q
		}
		out[i] = scaled
	}

	return out
}
