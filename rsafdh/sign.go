package rsafdh

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"math/big"
)

// Sign a message.
//
//	- rng is the random source for blinding (nil to use the OS RNG)
//	- priv is the signing key
//	- h is the hash function for the full-domain hash
//	- message is the data to sign
//
// The message is hashed with HashMessage against the public half of
// priv, then the digest is signed with SignHashed.
func Sign(rng io.Reader, priv *rsa.PrivateKey, h Hash, message []byte) ([]byte, error) {
	if priv == nil {
		return nil, ErrInvalidKey
	}
	digest, _, err := HashMessage(h, &priv.PublicKey, message)
	if err != nil {
		return nil, err
	}
	return SignHashed(rng, priv, digest)
}

// Sign a digest (normally obtained from HashMessage, or from Blind).
//
// The digest must not be longer than the modulus (ErrDigestIncorrectSize)
// and its big-endian value must be lower than the modulus
// (ErrDigestTooLarge); these checks happen before any use of the private
// key. The signature is digest^d mod n, computed with blinding; it is
// returned over exactly priv.Size() bytes (big-endian).
//
// Using the OS RNG (rng set to nil) is recommended. Failures of the RSA
// operation, including a failing random source, are returned as
// *RSAError.
func SignHashed(rng io.Reader, priv *rsa.PrivateKey, digest []byte) ([]byte, error) {
	if priv == nil || !modulus_ok(priv.N) {
		return nil, &RSAError{Err: rsa.ErrDecryption}
	}
	size := priv.Size()
	if size < len(digest) {
		return nil, ErrDigestIncorrectSize
	}
	m := new(big.Int).SetBytes(digest)
	if m.Cmp(priv.N) >= 0 {
		return nil, ErrDigestTooLarge
	}

	if rng == nil {
		rng = rand.Reader
	}
	c, err := decrypt_and_check(rng, priv, m)
	if err != nil {
		return nil, &RSAError{Err: err}
	}
	return c.FillBytes(make([]byte, size)), nil
}
