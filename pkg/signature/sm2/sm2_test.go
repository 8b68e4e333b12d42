package sm2

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/edwards25519"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/secp256k1"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/sm2p256"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
)

var groups = []group.Group{sm2p256.New(), secp256k1.New(), edwards25519.New()}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func newKey(t *testing.T, g group.Group) (group.Scalar, group.Point) {
	t.Helper()
	x, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return x, g.Generator().Mul(x)
}

// verifyDigest checks e + (s·G + (r+s)·P).x == r for a precomputed digest.
func verifyDigest(g group.Group, d []byte, public group.Point, sig *Signature) bool {
	e, err := g.ScalarFromBytes(d)
	if err != nil {
		return false
	}
	p := g.Generator().Mul(sig.S()).Add(public.Mul(sig.R().Add(sig.S())))
	return e.Add(p.X()).Equal(sig.R())
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			signer, err := New(g, digest.SM3)
			require.NoError(t, err)
			secret, public := newKey(t, g)

			for i := 0; i < 10; i++ {
				msg := make([]byte, 5+i*13)
				_, err := rand.Read(msg)
				require.NoError(t, err)

				sig, err := signer.SignMessage(msg, secret, rand.Reader)
				require.NoError(t, err)
				assert.True(t, signer.Verify(msg, public, sig))
				assert.True(t, signer.VerifyBytes(msg, public, sig.Bytes()))
			}
		})
	}
}

func TestSignDigestVerifyMessage(t *testing.T) {
	g := sm2p256.New()
	signer, err := New(g, digest.SHA3_256)
	require.NoError(t, err)
	secret, public := newKey(t, g)
	msg := []byte("hello sm2")

	sig, err := signer.Sign(digest.SHA3_256.Sum(msg), secret, rand.Reader)
	require.NoError(t, err)
	assert.True(t, signer.Verify(msg, public, sig))
	// Verify hashes its input, so passing the digest itself must fail.
	assert.False(t, signer.Verify(digest.SHA3_256.Sum(msg), public, sig))
}

func TestVerifyRejectsTampering(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			signer, err := New(g, digest.SHA3_256)
			require.NoError(t, err)
			secret, public := newKey(t, g)
			msg := []byte("transfer 10 coins to alice")

			sig, err := signer.SignMessage(msg, secret, rand.Reader)
			require.NoError(t, err)

			for bit := 0; bit < len(msg)*8; bit += 7 {
				tampered := append([]byte(nil), msg...)
				tampered[bit/8] ^= 1 << (bit % 8)
				assert.False(t, signer.Verify(tampered, public, sig), "bit %d", bit)
			}

			_, otherPublic := newKey(t, g)
			assert.False(t, signer.Verify(msg, otherPublic, sig))
		})
	}
}

func TestVerifyRejectsDegenerate(t *testing.T) {
	g := secp256k1.New()
	signer, err := New(g, digest.SHA3_256)
	require.NoError(t, err)
	_, public := newKey(t, g)
	msg := []byte("m")

	one := g.One()
	assert.False(t, signer.Verify(msg, public, signature.NewScalarPair(g.Zero(), one)))
	assert.False(t, signer.Verify(msg, public, signature.NewScalarPair(one, g.Zero())))
	assert.False(t, signer.Verify(msg, public, signature.NewScalarPair(one, one.Negate())))
	assert.False(t, signer.Verify(msg, public, nil))
	assert.False(t, signer.VerifyBytes(msg, public, []byte("short")))
}

func TestSignRetriesDegenerateR(t *testing.T) {
	g := secp256k1.New()
	signer, err := New(g, digest.SHA3_256)
	require.NoError(t, err)
	secret, public := newKey(t, g)

	k, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	x := g.Generator().Mul(k).X()

	tests := []struct {
		name string
		e    group.Scalar
	}{
		// e = -x makes r = 0.
		{"r zero", x.Negate()},
		// e = -(k + x) makes r + k = 0.
		{"r plus k zero", k.Add(x).Negate()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := test.e.Bytes()
			// The first nonce is the degenerate k, later ones are random.
			rng := io.MultiReader(bytes.NewReader(k.Bytes()), rand.Reader)
			sig, err := signer.Sign(d, secret, rng)
			require.NoError(t, err)
			assert.False(t, sig.R().IsZero())
			assert.True(t, verifyDigest(g, d, public, sig))
		})
	}
}

func TestSignZeroS(t *testing.T) {
	g := secp256k1.New()
	signer, err := New(g, digest.SHA3_256)
	require.NoError(t, err)

	d := digest.SHA3_256.Sum([]byte("zero s"))
	e, err := g.ScalarFromBytes(d)
	require.NoError(t, err)
	k, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	r := e.Add(g.Generator().Mul(k).X())

	// s = 0 exactly when k == r·secret.
	secret := k.Mul(r.Inverse())
	_, err = signer.Sign(d, secret, bytes.NewReader(k.Bytes()))
	require.ErrorIs(t, err, cryptoerr.ErrSM2Signature)
}

func TestSignErrors(t *testing.T) {
	g := sm2p256.New()
	secret, _ := newKey(t, g)

	signer, err := New(g, digest.SM3, signature.WithMaxAttempts(2))
	require.NoError(t, err)

	_, err = signer.Sign(make([]byte, 16), secret, rand.Reader)
	require.ErrorIs(t, err, cryptoerr.ErrDigestSize)

	_, err = signer.Sign(make([]byte, 32), secret, zeroReader{})
	require.ErrorIs(t, err, cryptoerr.ErrRetryLimit)

	_, err = New(g, digest.SHA3_512)
	require.ErrorIs(t, err, cryptoerr.ErrWidthMismatch)
}
