package rsafdh

import (
	"errors"
	"math/big"
)

// Errors returned by this package. Failures of the underlying RSA
// arithmetic are reported as *RSAError values.
var (
	ErrDigestTooLarge      = errors.New("rsa-fdh: digest big-endian numeric value is too large")
	ErrDigestIncorrectSize = errors.New("rsa-fdh: digest is incorrectly sized")
	ErrVerification        = errors.New("rsa-fdh: verification failed")
	ErrModulusTooLarge     = errors.New("rsa-fdh: public key modulus is too large")
	ErrInvalidKey          = errors.New("rsa-fdh: invalid key")
	ErrUnknownHash         = errors.New("rsa-fdh: unknown hash function")
	ErrInvalidBlind        = errors.New("rsa-fdh: invalid blinding factor")
)

// RSAError wraps an error raised by the RSA private-key operation
// (invalid key material, unusable blinding factor, failing random
// source, or a result that does not pass the public-key check).
type RSAError struct {
	Err error
}

func (e *RSAError) Error() string {
	return "rsa-fdh: rsa error: " + e.Err.Error()
}

func (e *RSAError) Unwrap() error {
	return e.Err
}

// Return a new slice of exactly size bytes, containing the input
// right-aligned and preceded by zeros. If the input is longer than size,
// only its last size bytes are kept.
func leftPad(input []byte, size int) []byte {
	if len(input) > size {
		input = input[len(input)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(input):], input)
	return out
}

// Check that a modulus is usable (non-nil and positive).
func modulus_ok(n *big.Int) bool {
	return n != nil && n.Sign() > 0
}
