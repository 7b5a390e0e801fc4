package bfv

import "github.com/dmmjrgif/my-fhe-library/ring"

// This file implements ciphertext multiplication and relinearization,
// grounded on tuneinsight-lattigo/bfv/evaluator.go's tensorAndRescale and
// relinearize/switchKeys: tensor the two input ciphertexts into a length-3
// extended ciphertext over the negacyclic ring, rescale by t/q, then fold
// the length-3 ciphertext back to length 2 via a single relinearization
// key. The teacher's version works across an RNS modulus chain and a
// digit-decomposed key; this core has exactly one modulus and one key, so
// relinearize reduces to the single-key case the teacher's design notes
// call the trivial base case of gadget decomposition.

// MultiplyCiphertexts computes the tensor product of two linear
// ciphertexts (c10, c11) and (c20, c21) in ℤ_q[X]/(X^N+1), then rescales
// each resulting coefficient by t/q with round-half-up. All four input
// polynomials must have length N, or *ring.Error{Kind: ShapeMismatch} is
// returned.
func (b *Bfv) MultiplyCiphertexts(c10, c11, c20, c21 []int64) (d0, d1, d2 []int64, err error) {
	d0Raw, err := b.ntt.Multiply(c10, c20)
	if err != nil {
		return nil, nil, nil, err
	}

	left, err := b.ntt.Multiply(c10, c21)
	if err != nil {
		return nil, nil, nil, err
	}
	right, err := b.ntt.Multiply(c11, c20)
	if err != nil {
		return nil, nil, nil, err
	}
	d1Raw, err := b.ntt.Add(left, right)
	if err != nil {
		return nil, nil, nil, err
	}

	d2Raw, err := b.ntt.Multiply(c11, c21)
	if err != nil {
		return nil, nil, nil, err
	}

	return b.scaleDown(d0Raw), b.scaleDown(d1Raw), b.scaleDown(d2Raw), nil
}

// Relinearize reduces the extended ciphertext (d0, d1, d2) back to a linear
// ciphertext (c0, c1) using the relinearization key (rk0, rk1):
//
//	c0 = d0 + d2*rk0
//	c1 = d1 + d2*rk1
//
// rk0 and rk1 must each have length N, or *ring.Error{Kind: InvalidKey} is
// returned. d0, d1, d2 must each have length N, or
// *ring.Error{Kind: ShapeMismatch} is returned.
func (b *Bfv) Relinearize(d0, d1, d2, rk0, rk1 []int64) (c0, c1 []int64, err error) {
	n := b.ntt.N()
	if len(rk0) != n || len(rk1) != n {
		return nil, nil, &ring.Error{
			Kind: ring.InvalidKey,
			Msg:  "relinearization key must hold two polynomials of length N",
		}
	}

	t0, err := b.ntt.Multiply(d2, rk0)
	if err != nil {
		return nil, nil, err
	}
	t1, err := b.ntt.Multiply(d2, rk1)
	if err != nil {
		return nil, nil, err
	}

	c0, err = b.ntt.Add(d0, t0)
	if err != nil {
		return nil, nil, err
	}
	c1, err = b.ntt.Add(d1, t1)
	if err != nil {
		return nil, nil, err
	}

	return c0, c1, nil
}
