package digest

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
)

func TestKnownAnswers(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		in   string
		want string
	}{
		{SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{SHA3_512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
		{Keccak256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{SM3, "abc", "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
	}

	for _, test := range tests {
		t.Run(test.alg.Name(), func(t *testing.T) {
			got := test.alg.Sum([]byte(test.in))
			assert.Equal(t, test.want, hex.EncodeToString(got))
			assert.Len(t, got, test.alg.Size())
		})
	}
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	h := SHA3_256.New()
	h.Update([]byte("a"))
	h.Update([]byte("bc"))
	require.Equal(t, SHA3_256.Sum([]byte("abc")), h.Finalize())
}

func TestFinalizeSplit(t *testing.T) {
	seed, err := hex.DecodeString("2241d53909f4bb532b05c6216bdf0372fffffffffffffffffffffffffeffffff")
	require.NoError(t, err)

	h := SHA3_512.New()
	h.Update(seed)
	left, right := h.FinalizeSplit()
	require.Equal(t, "64e4ee3052ab8e2c880b19c88fdb2697f0c6cbacd1c5fe2c7ab19c3926e32b6f", hex.EncodeToString(left))
	require.Equal(t, "e554fa36900989cf98f874a840f94407c705d96ecff6c3a4a60d592acb0db5e5", hex.EncodeToString(right))

	// Appending to the left half must not clobber the right half.
	_ = append(left, 0x00)
	require.Equal(t, "e554fa36900989cf98f874a840f94407c705d96ecff6c3a4a60d592acb0db5e5", hex.EncodeToString(right))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"sha3-256", "SHA3-512", "keccak256", "sm3"} {
		alg, err := Lookup(name)
		require.NoError(t, err)
		assert.False(t, alg.IsZero())
	}
	_, err := Lookup("md5")
	require.Error(t, err)
}

func TestRequireSize(t *testing.T) {
	require.NoError(t, SHA3_256.RequireSize(32, "test"))
	require.ErrorIs(t, SHA3_512.RequireSize(32, "test"), cryptoerr.ErrWidthMismatch)
	require.ErrorIs(t, Algorithm{}.RequireSize(32, "test"), cryptoerr.ErrNoDigest)
}
