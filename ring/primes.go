package ring

// This file is grounded on the teacher's ring/primes.go (NextNTTPrime,
// GenerateNTTPrimesQ), which walks an arithmetic progression of step NthRoot
// and tests each candidate for primality. The teacher delegates primality to
// math/big's Baillie-PSW (IsPrime via big.Int.ProbablyPrime); this core uses
// plain trial division instead, per spec: the primes searched here are
// small test/demo moduli, not production 61-bit RNS limbs, so there is no
// need for the teacher's probabilistic test.

// isPrimeTrialDivision reports whether x is prime using trial division up
// to sqrt(x).
func isPrimeTrialDivision(x int64) bool {
	if x < 2 {
		return false
	}
	if x == 2 || x == 3 {
		return true
	}
	if x%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= x; d += 2 {
		if x%d == 0 {
			return false
		}
	}
	return true
}

// FindNTTPrime returns the smallest prime q > 0 with q ≡ 1 (mod 2N),
// searching the arithmetic progression starting at 2N+1 and stepping by 2N.
func FindNTTPrime(N int) (int64, error) {
	if N <= 0 || (N&(N-1)) != 0 {
		return 0, newError(InvalidParameter, "N=%d must be a positive power of two", N)
	}

	step := int64(2 * N)
	candidate := step + 1

	for !isPrimeTrialDivision(candidate) {
		candidate += step
	}

	return candidate, nil
}
