// This package implements RSA signatures with a full-domain hash (RSA-FDH).
//
// The message to sign is not padded with an ad hoc scheme such as PKCS#1
// v1.5; instead, it is hashed into a value that is uniformly distributed
// over the whole range [0, n) of the signer's RSA modulus, and raw RSA is
// then applied to that value. This is the "full-domain hash" construction,
// which has a tight security proof in the random oracle model.
//
// The full-domain digest is computed by [HashMessage]. The message and
// the big-endian encoding of the modulus are fed to an extendable-output
// function (XOF), and candidates of exactly the modulus byte length are
// extracted for successive values of a one-byte counter, until one of
// them is lower than the modulus; the bits of each candidate above the
// bit length of the modulus are cleared first, which only matters for
// moduli whose bit length is not a multiple of 8. The counter value that was used is
// returned along with the digest; it is informational only, since the
// verifier recomputes the digest independently. The XOF is selected with
// a [Hash] value: SHAKE128, SHAKE256 and BLAKE2b are native XOFs, while
// SHA-256, SHA-512, SHA3-256 and SHA3-512 are extended in counter mode.
//
// A digest is signed with [SignHashed] and checked with [VerifyHashed];
// [Sign] and [Verify] chain the hashing and the RSA operation for the
// common case. The private-key operation always uses RSA blinding, with a
// fresh blinding factor for each call, and checks its own result with the
// public exponent before returning it. As for other signing functions of
// this kind, the random source can be left to nil, in which case the
// operating system's RNG is used (through crypto/rand.Reader).
//
// Verification failures are all reported as [ErrVerification], whatever
// the cause (wrong length, out-of-range value, or mismatch), so that a
// verifier exposed to untrusted input does not act as an oracle.
//
// Blind signatures are supported through [Blind] and [Unblind]: a client
// blinds its digest, the signer applies [SignHashed] to the blinded value
// without learning the digest, and the client unblinds the result into a
// plain RSA-FDH signature.
//
// Keys are standard [crypto/rsa] keys. This package does not generate
// keys, and does not implement encryption or any other padding scheme.
package rsafdh
