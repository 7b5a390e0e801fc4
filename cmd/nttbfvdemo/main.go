// Command nttbfvdemo is a small command-line driver exercising the ring
// and bfv packages end to end: it finds an NTT-friendly prime for a given
// degree, builds a Bfv multiplier, and multiplies a trivial plaintext
// ciphertext by the identity ciphertext, relinearizing with a zero key.
// Grounded on the flag-driven CLI style visible across the teacher's
// cmd/ tree (plain stdlib flag, stdlib log, no third-party CLI framework).
package main

import (
	"flag"
	"log"

	"github.com/dmmjrgif/my-fhe-library/bfv"
	"github.com/dmmjrgif/my-fhe-library/ring"
)

func main() {
	n := flag.Int("N", 4, "ring degree, must be a power of two")
	t := flag.Int64("t", 2, "plaintext modulus")
	flag.Parse()

	q, err := ring.FindNTTPrime(*n)
	if err != nil {
		log.Fatalf("finding NTT prime: %v", err)
	}
	log.Printf("N=%d: smallest NTT-friendly prime q=%d", *n, q)

	b, err := bfv.NewBFV(*n, q, *t)
	if err != nil {
		log.Fatalf("constructing BFV multiplier: %v", err)
	}
	log.Printf("delta = floor(q/t) = %d", b.Delta())

	m := make([]int64, *n)
	m[0] = 1

	delta := b.Delta()
	c10 := make([]int64, *n)
	c11 := make([]int64, *n)
	for i, v := range m {
		c10[i] = (delta * v) % q
	}

	one := make([]int64, *n)
	one[0] = 1
	zero := make([]int64, *n)

	d0, d1, d2, err := b.MultiplyCiphertexts(c10, c11, one, zero)
	if err != nil {
		log.Fatalf("multiplying ciphertexts: %v", err)
	}

	c0, c1, err := b.Relinearize(d0, d1, d2, zero, zero)
	if err != nil {
		log.Fatalf("relinearizing: %v", err)
	}

	log.Printf("recovered c0=%v c1=%v", c0, c1)
}
