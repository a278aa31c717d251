package rsafdh

import (
	"crypto/rsa"
	"crypto/subtle"
	"math/big"
)

// Verify a signature over a message.
//
//	- pub is the signer's public key
//	- h is the hash function used for the full-domain hash
//	- message is the signed data
//	- sig is the signature to verify
//
// Returned value is nil for a valid signature, ErrVerification otherwise
// (including when the message cannot be hashed for this key).
func Verify(pub *rsa.PublicKey, h Hash, message []byte, sig []byte) error {
	digest, _, err := HashMessage(h, pub, message)
	if err != nil {
		return ErrVerification
	}
	return VerifyHashed(pub, digest, sig)
}

// Verify a signature over a digest. For blind signatures, this is
// called on the unblinded signature and the original digest.
//
// The digest must have length pub.Size() and a value lower than the
// modulus. The signature is decoded as a big-endian integer, which must
// be lower than the modulus and is then raised to the public exponent;
// the result is compared with the digest in constant time. All failures
// yield ErrVerification, without further detail.
func VerifyHashed(pub *rsa.PublicKey, digest []byte, sig []byte) error {
	if pub == nil || !modulus_ok(pub.N) || pub.E < 2 {
		return ErrVerification
	}
	size := pub.Size()
	if len(digest) != size {
		return ErrVerification
	}
	n := pub.N
	if new(big.Int).SetBytes(digest).Cmp(n) >= 0 {
		return ErrVerification
	}

	if len(sig) > size {
		return ErrVerification
	}
	c := new(big.Int).SetBytes(sig)
	if c.Cmp(n) >= 0 {
		return ErrVerification
	}
	m := encrypt(pub, c).Bytes()
	if len(m) < len(digest) {
		m = leftPad(m, len(digest))
	}

	if subtle.ConstantTimeCompare(m, digest) != 1 {
		return ErrVerification
	}
	return nil
}
