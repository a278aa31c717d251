package rsafdh

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"math/big"
)

// Blind a digest before sending it to the signer.
//
//	- rng is the random source (nil to use the OS RNG)
//	- pub is the signer's public key
//	- digest is the full-domain digest, from HashMessage
//
// The digest must have length exactly pub.Size() (ErrDigestIncorrectSize)
// and a value lower than the modulus (ErrDigestTooLarge). The blinded
// value is digest*r^e mod n for a fresh random r which is
// invertible modulo n; the unblinder is 1/r mod n. Both are returned over
// exactly pub.Size() bytes. The unblinder must be kept secret by the
// caller until Unblind is applied to the signer's answer.
func Blind(rng io.Reader, pub *rsa.PublicKey, digest []byte) (blinded []byte, unblinder []byte, err error) {
	if pub == nil || !modulus_ok(pub.N) || pub.E < 2 {
		return nil, nil, ErrInvalidKey
	}
	size := pub.Size()
	if len(digest) != size {
		return nil, nil, ErrDigestIncorrectSize
	}
	n := pub.N
	m := new(big.Int).SetBytes(digest)
	if m.Cmp(n) >= 0 {
		return nil, nil, ErrDigestTooLarge
	}

	if rng == nil {
		rng = rand.Reader
	}
	r, err := rand.Int(rng, n)
	if err != nil {
		return nil, nil, err
	}
	ir := new(big.Int).ModInverse(r, n)
	if ir == nil {
		return nil, nil, ErrInvalidBlind
	}
	c := encrypt(pub, r)
	c.Mul(c, m)
	c.Mod(c, n)

	blinded = c.FillBytes(make([]byte, size))
	unblinder = ir.FillBytes(make([]byte, size))
	return blinded, unblinder, nil
}

// Remove the blinding from a signature computed by SignHashed over a
// blinded digest. The result is a plain signature over the digest that
// was passed to Blind, and can be checked with VerifyHashed.
//
// ErrVerification is returned if the blinded signature is longer than
// the modulus or out of range; ErrInvalidBlind is returned if the
// unblinder does not have the modulus length or is out of range.
func Unblind(pub *rsa.PublicKey, blindedSig []byte, unblinder []byte) ([]byte, error) {
	if pub == nil || !modulus_ok(pub.N) {
		return nil, ErrInvalidKey
	}
	size := pub.Size()
	n := pub.N
	if len(blindedSig) > size {
		return nil, ErrVerification
	}
	s := new(big.Int).SetBytes(blindedSig)
	if s.Cmp(n) >= 0 {
		return nil, ErrVerification
	}
	if len(unblinder) != size {
		return nil, ErrInvalidBlind
	}
	ir := new(big.Int).SetBytes(unblinder)
	if ir.Sign() == 0 || ir.Cmp(n) >= 0 {
		return nil, ErrInvalidBlind
	}

	s.Mul(s, ir)
	s.Mod(s, n)
	return s.FillBytes(make([]byte, size)), nil
}
