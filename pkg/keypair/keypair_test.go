package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/edwards25519"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/secp256k1"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/sm2p256"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func newEngine(t *testing.T, g group.Group) *Engine {
	t.Helper()
	e, err := NewEngine(g, digest.SHA3_512)
	require.NoError(t, err)
	return e
}

func TestFromSeedVectors(t *testing.T) {
	tests := []struct {
		name   string
		group  group.Group
		seed   []byte
		secret string
		public string
		code   string
	}{
		{
			name:  "sm2p256",
			group: sm2p256.New(),
			seed: []byte{34, 65, 213, 57, 9, 244, 187, 83, 43, 5, 198, 33, 107, 223, 3, 114,
				255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 254, 255, 255, 255},
			secret: "64e4ee3052ab8e2c880b19c88fdb2697f0c6cbacd1c5fe2c7ab19c3926e32b6f",
			public: "031f0fd5fbcf27f56c3feaca508b0dcaec8780d871dbdf946c8e83a6a7ff98727d",
			code:   "e554fa36900989cf98f874a840f94407c705d96ecff6c3a4a60d592acb0db5e5",
		},
		{
			name:   "edwards25519",
			group:  edwards25519.New(),
			seed:   mustHex(t, "bb6a098b6b0dc3e0ca8203f3a7c1b65751b7f3514ade105715ce7f362033126e"),
			secret: "57074db0f4b65e1fb48347a518c4880ffc7db9e638e42aa1752b51f83205f60d",
			public: "2eaac826c7f6d6bb4505984be906e896aebe20fb93a907a30b54a42423390260",
			code:   "4fbaa822ea973a2681ca7724392fc8966fb4e661809afb10e289790ae077cf38",
		},
		{
			name:  "secp256k1",
			group: secp256k1.New(),
			seed: []byte{34, 65, 213, 57, 9, 244, 187, 83, 43, 5, 198, 33, 107, 223, 3, 114,
				255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 254, 255, 255, 255},
			secret: "64e4ee3052ab8e2c880b19c88fdb2697f0c6cbacd1c5fe2c7ab19c3926e32b6f",
			public: "027fe0f0f51f2e2b04eb60fc2becd75be3613cdf8fd74d4c05279734e34b2302d8",
			code:   "e554fa36900989cf98f874a840f94407c705d96ecff6c3a4a60d592acb0db5e5",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kp, err := newEngine(t, test.group).FromSeed(test.seed)
			require.NoError(t, err)
			assert.Equal(t, test.secret, hex.EncodeToString(kp.Secret().Bytes()))
			assert.Equal(t, test.public, hex.EncodeToString(kp.Public().Bytes()))
			assert.Equal(t, test.code, hex.EncodeToString(kp.Code()))
			assert.Equal(t, test.seed, kp.Seed())
		})
	}
}

func TestFromSeedDeterministic(t *testing.T) {
	e := newEngine(t, sm2p256.New())
	seed := make([]byte, e.SeedSize())
	_, err := rand.Read(seed)
	require.NoError(t, err)

	a, err := e.FromSeed(seed)
	require.NoError(t, err)
	b, err := e.FromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, a.Secret().Bytes(), b.Secret().Bytes())
	assert.Equal(t, a.Public().Bytes(), b.Public().Bytes())
	assert.Equal(t, a.Code(), b.Code())
}

func TestGenerateKeyRelation(t *testing.T) {
	for _, g := range []group.Group{sm2p256.New(), secp256k1.New(), edwards25519.New()} {
		t.Run(g.Name(), func(t *testing.T) {
			e := newEngine(t, g)
			for i := 0; i < 8; i++ {
				kp, err := e.Generate(rand.Reader)
				require.NoError(t, err)
				assert.False(t, kp.Secret().IsZero())
				assert.True(t, kp.Public().Equal(g.Generator().Mul(kp.Secret())))
				assert.Len(t, kp.Seed(), g.ScalarSize())
				assert.Len(t, kp.Code(), g.ScalarSize())
			}
		})
	}
}

func TestGenerateReadError(t *testing.T) {
	e := newEngine(t, sm2p256.New())
	_, err := e.Generate(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestAccessorsReturnCopies(t *testing.T) {
	e := newEngine(t, sm2p256.New())
	kp, err := e.Generate(rand.Reader)
	require.NoError(t, err)

	seed := kp.Seed()
	code := kp.Code()
	seed[0] ^= 0xff
	code[0] ^= 0xff
	assert.NotEqual(t, seed, kp.Seed())
	assert.NotEqual(t, code, kp.Code())
}

// zeroGroup decodes every scalar as zero so that every seed is rejected.
type zeroGroup struct {
	group.Group
}

func (g zeroGroup) ScalarFromBytes(b []byte) (group.Scalar, error) {
	if err := group.CheckScalarSize("zero", b, g.ScalarSize()); err != nil {
		return nil, err
	}
	return g.Zero(), nil
}

func TestFromSeedZeroScalar(t *testing.T) {
	e := newEngine(t, zeroGroup{sm2p256.New()})
	seed := make([]byte, e.SeedSize())

	kp, err := e.FromSeed(seed)
	require.Nil(t, kp)
	require.ErrorIs(t, err, cryptoerr.ErrKeyPairGen)

	// Deterministic: the same seed fails the same way.
	_, err = e.FromSeed(seed)
	require.ErrorIs(t, err, cryptoerr.ErrKeyPairGen)
}

func TestNewEngineWidthMismatch(t *testing.T) {
	_, err := NewEngine(sm2p256.New(), digest.SHA3_256)
	require.ErrorIs(t, err, cryptoerr.ErrWidthMismatch)

	var cerr cryptoerr.Error
	require.True(t, errors.As(err, &cerr))
}

func TestFromSeedWrongSize(t *testing.T) {
	e := newEngine(t, secp256k1.New())
	_, err := e.FromSeed(make([]byte, 31))
	require.ErrorIs(t, err, cryptoerr.ErrSeedSize)
}

func TestJSONRoundTrip(t *testing.T) {
	e := newEngine(t, edwards25519.New())
	kp, err := e.Generate(rand.Reader)
	require.NoError(t, err)

	data, err := json.Marshal(kp)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t, []string{"seed", "secret_key", "public_key", "code"}, keys(fields))

	decoded, err := e.UnmarshalKeypair(data)
	require.NoError(t, err)
	assert.True(t, decoded.Secret().Equal(kp.Secret()))
	assert.True(t, decoded.Public().Equal(kp.Public()))
	assert.Equal(t, kp.Code(), decoded.Code())
}

func TestUnmarshalRejectsTampering(t *testing.T) {
	e := newEngine(t, sm2p256.New())
	kp, err := e.Generate(rand.Reader)
	require.NoError(t, err)
	other, err := e.Generate(rand.Reader)
	require.NoError(t, err)

	for _, field := range []string{"secret_key", "public_key", "code"} {
		t.Run(field, func(t *testing.T) {
			data, err := json.Marshal(kp)
			require.NoError(t, err)
			otherData, err := json.Marshal(other)
			require.NoError(t, err)

			var fields, otherFields map[string]string
			require.NoError(t, json.Unmarshal(data, &fields))
			require.NoError(t, json.Unmarshal(otherData, &otherFields))
			fields[field] = otherFields[field]

			tampered, err := json.Marshal(fields)
			require.NoError(t, err)
			_, err = e.UnmarshalKeypair(tampered)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidKeypair)
		})
	}

	_, err = e.UnmarshalKeypair([]byte(`{"seed": "zz"}`))
	require.ErrorIs(t, err, cryptoerr.ErrInvalidKeypair)
	_, err = e.UnmarshalKeypair([]byte(`not json`))
	require.ErrorIs(t, err, cryptoerr.ErrInvalidKeypair)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
