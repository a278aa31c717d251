package rsafdh

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
)

func TestBlind_RoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	pub := &priv.PublicKey

	for h := SHAKE128; h <= SHA3_512; h++ {
		msg := []byte("blind " + h.String())
		digest, _, err := HashMessage(h, pub, msg)
		require.NoError(t, err)

		blinded, unblinder, err := Blind(nil, pub, digest)
		require.NoError(t, err)
		require.Len(t, blinded, pub.Size())
		require.Len(t, unblinder, pub.Size())
		require.False(t, bytes.Equal(blinded, digest))

		bsig, err := SignHashed(nil, priv, blinded)
		require.NoError(t, err)
		sig, err := Unblind(pub, bsig, unblinder)
		require.NoError(t, err)
		require.NoError(t, VerifyHashed(pub, digest, sig))
		require.NoError(t, Verify(pub, h, msg, sig))

		// Same signature as a direct one.
		direct, err := SignHashed(nil, priv, digest)
		require.NoError(t, err)
		require.Equal(t, direct, sig)
	}
}

func TestBlind_Errors(t *testing.T) {
	priv := test_key(t)
	pub := &priv.PublicKey
	size := pub.Size()

	_, _, err := Blind(nil, nil, []byte{1})
	require.ErrorIs(t, err, ErrInvalidKey)
	_, _, err = Blind(nil, pub, make([]byte, size+1))
	require.ErrorIs(t, err, ErrDigestIncorrectSize)
	_, _, err = Blind(nil, pub, make([]byte, size-1))
	require.ErrorIs(t, err, ErrDigestIncorrectSize)
	_, _, err = Blind(nil, pub, []byte{1})
	require.ErrorIs(t, err, ErrDigestIncorrectSize)
	_, _, err = Blind(nil, pub, pub.N.Bytes())
	require.ErrorIs(t, err, ErrDigestTooLarge)
	_, _, err = Blind(failing_reader{}, pub, leftPad([]byte{1}, size))
	require.ErrorIs(t, err, errRNG)

	digest, _, err := HashMessage(SHAKE256, pub, []byte("hello world"))
	require.NoError(t, err)
	blinded, unblinder, err := Blind(nil, pub, digest)
	require.NoError(t, err)
	bsig, err := SignHashed(nil, priv, blinded)
	require.NoError(t, err)

	_, err = Unblind(nil, bsig, unblinder)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = Unblind(pub, append([]byte{0}, bsig...), unblinder)
	require.ErrorIs(t, err, ErrVerification)
	_, err = Unblind(pub, pub.N.Bytes(), unblinder)
	require.ErrorIs(t, err, ErrVerification)
	_, err = Unblind(pub, bsig, unblinder[1:])
	require.ErrorIs(t, err, ErrInvalidBlind)
	_, err = Unblind(pub, bsig, make([]byte, size))
	require.ErrorIs(t, err, ErrInvalidBlind)
	_, err = Unblind(pub, bsig, pub.N.Bytes())
	require.ErrorIs(t, err, ErrInvalidBlind)

	// A wrong unblinder gives a signature that does not verify.
	wrong := new(big.Int).SetBytes(unblinder)
	wrong.Add(wrong, big.NewInt(1))
	wrong.Mod(wrong, pub.N)
	sig, err := Unblind(pub, bsig, leftPad(wrong.Bytes(), size))
	require.NoError(t, err)
	require.ErrorIs(t, VerifyHashed(pub, digest, sig), ErrVerification)
}
