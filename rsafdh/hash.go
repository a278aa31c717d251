package rsafdh

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"golang.org/x/crypto/blake2b"
	sha3 "golang.org/x/crypto/sha3"
	"hash"
	"io"
	"strconv"
)

// Hash identifies the function used to expand a message into a
// full-domain digest.
type Hash uint

const (
	SHAKE128 Hash = 1 + iota // SHAKE128 XOF
	SHAKE256                 // SHAKE256 XOF
	BLAKE2b                  // BLAKE2b XOF, unknown output length
	SHA256                   // SHA-256 in counter mode
	SHA512                   // SHA-512 in counter mode
	SHA3_256                 // SHA3-256 in counter mode
	SHA3_512                 // SHA3-512 in counter mode
)

var hash_names = [...]string{
	SHAKE128: "SHAKE128",
	SHAKE256: "SHAKE256",
	BLAKE2b:  "BLAKE2b-XOF",
	SHA256:   "SHA-256",
	SHA512:   "SHA-512",
	SHA3_256: "SHA3-256",
	SHA3_512: "SHA3-512",
}

func (h Hash) String() string {
	if h.Available() {
		return hash_names[h]
	}
	return "unknown hash value " + strconv.Itoa(int(h))
}

// Available reports whether h is a known hash function.
func (h Hash) Available() bool {
	return h >= SHAKE128 && h <= SHA3_512
}

// An expander produces candidate digests for successive counter values.
// The message and modulus have been absorbed when it is created.
type expander interface {
	// Fill out with the candidate for counter iv. The whole slice is
	// written.
	candidate(iv uint8, out []byte)
}

// Create the expander for the given hash function over prefix
// (concatenated, in order).
func new_expander(h Hash, prefix ...[]byte) (expander, error) {
	switch h {
	case SHAKE128:
		sh := sha3.NewShake128()
		for _, p := range prefix {
			sh.Write(p)
		}
		return &xof_expander{fork: func() io.ReadWriter { return sh.Clone() }}, nil
	case SHAKE256:
		sh := sha3.NewShake256()
		for _, p := range prefix {
			sh.Write(p)
		}
		return &xof_expander{fork: func() io.ReadWriter { return sh.Clone() }}, nil
	case BLAKE2b:
		x, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
		if err != nil {
			return nil, err
		}
		for _, p := range prefix {
			x.Write(p)
		}
		return &xof_expander{fork: func() io.ReadWriter { return x.Clone() }}, nil
	case SHA256:
		return &block_expander{h: sha256.New(), prefix: prefix}, nil
	case SHA512:
		return &block_expander{h: sha512.New(), prefix: prefix}, nil
	case SHA3_256:
		return &block_expander{h: sha3.New256(), prefix: prefix}, nil
	case SHA3_512:
		return &block_expander{h: sha3.New512(), prefix: prefix}, nil
	default:
		return nil, ErrUnknownHash
	}
}

// Expander over a native XOF. The prefix is absorbed once; each
// candidate works on a clone of that state, extended with the counter
// byte.
type xof_expander struct {
	fork func() io.ReadWriter
}

func (x *xof_expander) candidate(iv uint8, out []byte) {
	sh := x.fork()
	sh.Write([]byte{iv})
	sh.Read(out)
}

// Expander over a fixed-output hash function. Output block j of the
// candidate for counter iv is:
//
//	H(prefix || iv || j)
//
// with j encoded over four bytes (big-endian). Blocks are concatenated
// and the last one is truncated as needed.
type block_expander struct {
	h      hash.Hash
	prefix [][]byte
	buf    []byte
}

func (b *block_expander) candidate(iv uint8, out []byte) {
	var sfx [5]byte
	sfx[0] = iv
	off := 0
	for j := uint32(0); off < len(out); j++ {
		b.h.Reset()
		for _, p := range b.prefix {
			b.h.Write(p)
		}
		binary.BigEndian.PutUint32(sfx[1:], j)
		b.h.Write(sfx[:])
		b.buf = b.h.Sum(b.buf[:0])
		off += copy(out[off:], b.buf)
	}
}
