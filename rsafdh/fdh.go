package rsafdh

import (
	"crypto/rsa"
	"math/big"
)

// Largest supported modulus size, in bytes (65536 bits).
const MaxModulusSize = 8192

// Number of counter values tried by the digest search; the counter is a
// single byte.
const fdh_max_tries = 256

// Hash a message into a full-domain digest for the given public key.
//
//	- h is the hash function to expand the message with
//	- pub is the signer's public key
//	- message is the data to hash (arbitrary length)
//
// The returned digest has length exactly pub.Size() bytes, and its
// big-endian numeric value is lower than the modulus. The counter value
// iv that yielded the digest is returned as well. The output is a
// deterministic function of h, the modulus and the message; the public
// exponent is not used. Candidate bits above the bit length of the
// modulus are cleared before the range check, so for a modulus whose bit
// length is not a multiple of 8 the digest differs from that of an
// implementation which compares unmasked candidates; for byte-aligned
// moduli (all standard RSA key sizes) the two agree.
//
// ErrInvalidKey is returned if the key has no positive modulus,
// ErrUnknownHash if h is not a known hash function, and
// ErrModulusTooLarge if the modulus exceeds MaxModulusSize bytes or if
// no candidate was found in range.
func HashMessage(h Hash, pub *rsa.PublicKey, message []byte) (digest []byte, iv uint8, err error) {
	if pub == nil || !modulus_ok(pub.N) {
		return nil, 0, ErrInvalidKey
	}
	size := pub.Size()
	if size > MaxModulusSize {
		return nil, 0, ErrModulusTooLarge
	}

	// The modulus is appended to the message, so that a digest is bound
	// to a single key.
	ex, err := new_expander(h, message, pub.N.Bytes())
	if err != nil {
		return nil, 0, err
	}
	return fdh_search(ex, pub.N, size)
}

// Run the digest search: candidates of size bytes are obtained for
// counter values 0 to 255, and the first one which is lower than n is
// returned. Bits above the bit length of n are cleared in each
// candidate before comparison; this keeps the output uniform in [0, n)
// while making the probability of rejecting a candidate lower than 1/2.
func fdh_search(ex expander, n *big.Int, size int) ([]byte, uint8, error) {
	mask := byte(0xFF >> uint(8*size-n.BitLen()))
	digest := make([]byte, size)
	m := new(big.Int)
	for i := 0; i < fdh_max_tries; i++ {
		ex.candidate(uint8(i), digest)
		digest[0] &= mask
		if m.SetBytes(digest).Cmp(n) < 0 {
			return digest, uint8(i), nil
		}
	}
	return nil, 0, ErrModulusTooLarge
}
