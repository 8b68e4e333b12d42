package asymcrypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
)

func TestClient_SignVerifyAllSuites(t *testing.T) {
	for _, name := range SuiteNames() {
		suite, err := LookupSuite(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			client, err := NewClient(suite)
			require.NoError(t, err)
			kp, err := client.GenerateKeypair()
			require.NoError(t, err)

			msg := []byte("pay bob 3 coins")
			for _, scheme := range Schemes() {
				sig, err := client.Sign(scheme, kp, msg)
				require.NoError(t, err, scheme)
				assert.True(t, client.Verify(scheme, kp.Public(), msg, sig), scheme)
				assert.False(t, client.Verify(scheme, kp.Public(), []byte("pay bob 4 coins"), sig), scheme)
			}
		})
	}
}

func TestClient_KeypairFromSeedVector(t *testing.T) {
	client, err := NewClient(SM2)
	require.NoError(t, err)

	seed, err := hex.DecodeString("2241d53909f4bb532b05c6216bdf0372fffffffffffffffffffffffffeffffff")
	require.NoError(t, err)
	kp, err := client.KeypairFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, "031f0fd5fbcf27f56c3feaca508b0dcaec8780d871dbdf946c8e83a6a7ff98727d",
		hex.EncodeToString(kp.Public().Bytes()))

	pub, err := client.ParsePublicKeyHex("0x031f0fd5fbcf27f56c3feaca508b0dcaec8780d871dbdf946c8e83a6a7ff98727d")
	require.NoError(t, err)
	assert.True(t, pub.Equal(kp.Public()))

	data, err := json.Marshal(kp)
	require.NoError(t, err)
	decoded, err := client.UnmarshalKeypair(data)
	require.NoError(t, err)
	assert.True(t, decoded.Secret().Equal(kp.Secret()))
}

func TestClient_WithRandIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)

	a, err := NewClient(Secp256k1, WithRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	b, err := NewClient(Secp256k1, WithRand(bytes.NewReader(seed)))
	require.NoError(t, err)

	kpA, err := a.GenerateKeypair()
	require.NoError(t, err)
	kpB, err := b.GenerateKeypair()
	require.NoError(t, err)
	assert.Equal(t, kpA.Public().Bytes(), kpB.Public().Bytes())
	assert.Equal(t, seed, kpA.Seed())
}

func TestClient_Errors(t *testing.T) {
	client, err := NewClient(Ed25519)
	require.NoError(t, err)
	kp, err := client.GenerateKeypair()
	require.NoError(t, err)

	_, err = client.Sign("rsa", kp, []byte("m"))
	require.ErrorIs(t, err, cryptoerr.ErrUnknownScheme)
	for _, scheme := range Schemes() {
		_, err = client.Sign(scheme, nil, []byte("m"))
		require.ErrorIs(t, err, cryptoerr.ErrInvalidKeypair, scheme)
	}
	assert.False(t, client.Verify("rsa", kp.Public(), []byte("m"), nil))

	_, err = client.ParsePublicKey([]byte{1, 2, 3})
	require.ErrorIs(t, err, cryptoerr.ErrInvalidPoint)

	// A message hash wider than the scalar cannot be used.
	bad := Ed25519
	bad.MessageHash = digest.SHA3_512
	_, err = NewClient(bad)
	require.ErrorIs(t, err, cryptoerr.ErrWidthMismatch)
}

func TestLookupSuite(t *testing.T) {
	s, err := LookupSuite("SM2")
	require.NoError(t, err)
	assert.Equal(t, "sm2p256", s.Group.Name())
	assert.Equal(t, "sm3", s.MessageHash.Name())

	_, err = LookupSuite("p384")
	require.ErrorIs(t, err, cryptoerr.ErrUnknownSuite)
	assert.Equal(t, []string{"ed25519", "secp256k1", "sm2"}, SuiteNames())
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes() {
		got, err := ParseScheme(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseScheme("bls")
	require.ErrorIs(t, err, cryptoerr.ErrUnknownScheme)
}
