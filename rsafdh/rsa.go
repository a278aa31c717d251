package rsafdh

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"math/big"
)

// Raw RSA operations over math/big. The caller has checked the ranges of
// the inputs.

var bigOne = big.NewInt(1)

// Compute c^e mod n.
func encrypt(pub *rsa.PublicKey, c *big.Int) *big.Int {
	e := big.NewInt(int64(pub.E))
	return new(big.Int).Exp(c, e, pub.N)
}

// Check the private key fields used by the private-key operation. If
// primes are present, each must be greater than 1 and their product must
// be the modulus; a zero or nil prime would otherwise turn the CRT
// exponentiations into unreduced ones.
func check_private(priv *rsa.PrivateKey) error {
	if !modulus_ok(priv.N) || priv.E < 2 || priv.D == nil || priv.D.Sign() <= 0 {
		return rsa.ErrDecryption
	}
	if len(priv.Primes) == 0 {
		return nil
	}
	prod := big.NewInt(1)
	for _, p := range priv.Primes {
		if p == nil || p.Cmp(bigOne) <= 0 {
			return rsa.ErrDecryption
		}
		prod.Mul(prod, p)
	}
	if prod.Cmp(priv.N) != 0 {
		return rsa.ErrDecryption
	}
	return nil
}

// Compute c^d mod n, with blinding, then check the result against the
// public exponent. The blinding factor r is drawn once from random;
// c is multiplied by r^e before exponentiation, and the result by 1/r
// afterwards. A factor which is not invertible modulo n is reported as
// ErrInvalidBlind (this cannot happen with a valid key, except with
// negligible probability).
func decrypt_and_check(random io.Reader, priv *rsa.PrivateKey, c *big.Int) (*big.Int, error) {
	if err := check_private(priv); err != nil {
		return nil, err
	}
	n := priv.N
	if c.Sign() < 0 || c.Cmp(n) >= 0 {
		return nil, rsa.ErrDecryption
	}

	r, err := rand.Int(random, n)
	if err != nil {
		return nil, err
	}
	ir := new(big.Int).ModInverse(r, n)
	if ir == nil {
		return nil, ErrInvalidBlind
	}
	cb := encrypt(&priv.PublicKey, r)
	cb.Mul(cb, c)
	cb.Mod(cb, n)

	m := exp_private(priv, cb)
	m.Mul(m, ir)
	m.Mod(m, n)

	// Fault check: m^e must give back c.
	if encrypt(&priv.PublicKey, m).Cmp(c) != 0 {
		return nil, rsa.ErrVerification
	}
	return m, nil
}

// Compute c^d mod n. If the key has two primes and its CRT values have
// been precomputed, then the two half-size exponentiations are used;
// otherwise, the full private exponent is used.
func exp_private(priv *rsa.PrivateKey, c *big.Int) *big.Int {
	pc := &priv.Precomputed
	if len(priv.Primes) != 2 || pc.Dp == nil || pc.Dq == nil || pc.Qinv == nil {
		return new(big.Int).Exp(c, priv.D, priv.N)
	}
	p := priv.Primes[0]
	q := priv.Primes[1]

	// m1 = c^dP mod p, m2 = c^dQ mod q
	// h = qInv*(m1 - m2) mod p
	// m = m2 + h*q
	m1 := new(big.Int).Exp(c, pc.Dp, p)
	m2 := new(big.Int).Exp(c, pc.Dq, q)
	m1.Sub(m1, m2)
	m1.Mul(m1, pc.Qinv)
	m1.Mod(m1, p)
	m1.Mul(m1, q)
	return m1.Add(m1, m2)
}
