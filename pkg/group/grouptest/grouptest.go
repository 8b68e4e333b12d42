// Package grouptest provides a conformance suite shared by the group
// implementations.
package grouptest

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

// Run exercises the algebraic laws and codecs every group.Group must satisfy.
func Run(t *testing.T, g group.Group) {
	t.Run("ScalarField", func(t *testing.T) { testScalarField(t, g) })
	t.Run("ScalarCodec", func(t *testing.T) { testScalarCodec(t, g) })
	t.Run("PointLaws", func(t *testing.T) { testPointLaws(t, g) })
	t.Run("PointCodec", func(t *testing.T) { testPointCodec(t, g) })
	t.Run("Immutability", func(t *testing.T) { testImmutability(t, g) })
}

func randomScalar(t *testing.T, g group.Group) group.Scalar {
	t.Helper()
	s, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s
}

func testScalarField(t *testing.T, g group.Group) {
	a := randomScalar(t, g)
	b := randomScalar(t, g)

	assert.True(t, g.Zero().IsZero())
	assert.False(t, g.One().IsZero())
	assert.True(t, a.Add(g.Zero()).Equal(a), "a + 0 == a")
	assert.True(t, a.Mul(g.One()).Equal(a), "a * 1 == a")
	assert.True(t, a.Add(b).Equal(b.Add(a)), "addition commutes")
	assert.True(t, a.Mul(b).Equal(b.Mul(a)), "multiplication commutes")
	assert.True(t, a.Add(b).Sub(b).Equal(a), "(a + b) - b == a")
	assert.True(t, a.Add(a.Negate()).IsZero(), "a + -a == 0")
	assert.True(t, a.Mul(a.Inverse()).Equal(g.One()), "a * a^-1 == 1")
	assert.True(t, g.Zero().Inverse().IsZero(), "0^-1 == 0")
	assert.Len(t, a.Bytes(), g.ScalarSize())
}

func testScalarCodec(t *testing.T, g group.Group) {
	a := randomScalar(t, g)
	decoded, err := g.ScalarFromBytes(a.Bytes())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(a))

	hexDecoded, err := group.ScalarFromHex(g, "0x"+group.ScalarHex(a))
	require.NoError(t, err)
	assert.True(t, hexDecoded.Equal(a))

	// An all-ones buffer exceeds every supported order and must reduce.
	ones := make([]byte, g.ScalarSize())
	for i := range ones {
		ones[i] = 0xff
	}
	reduced, err := g.ScalarFromBytes(ones)
	require.NoError(t, err)
	again, err := g.ScalarFromBytes(reduced.Bytes())
	require.NoError(t, err)
	assert.True(t, again.Equal(reduced))

	_, err = g.ScalarFromBytes(make([]byte, g.ScalarSize()-1))
	require.ErrorIs(t, err, cryptoerr.ErrInvalidScalar)

	_, err = group.ScalarFromHex(g, "zz")
	require.ErrorIs(t, err, cryptoerr.ErrInvalidScalar)
}

func testPointLaws(t *testing.T, g group.Group) {
	a := randomScalar(t, g)
	b := randomScalar(t, g)
	gen := g.Generator()

	assert.True(t, g.Identity().IsIdentity())
	assert.False(t, gen.IsIdentity())
	assert.True(t, gen.Add(g.Identity()).Equal(gen), "G + O == G")
	assert.True(t, g.Identity().Add(gen).Equal(gen), "O + G == G")
	assert.True(t, gen.Mul(g.Zero()).IsIdentity(), "0*G == O")
	assert.True(t, gen.Mul(g.One()).Equal(gen), "1*G == G")
	assert.True(t, gen.Add(gen).Equal(gen.Mul(g.One().Add(g.One()))), "G + G == 2*G")

	aG := gen.Mul(a)
	bG := gen.Mul(b)
	assert.True(t, aG.Add(bG).Equal(gen.Mul(a.Add(b))), "aG + bG == (a+b)G")
	assert.True(t, aG.Mul(b).Equal(bG.Mul(a)), "b(aG) == a(bG)")
	assert.True(t, aG.Add(gen.Mul(a.Negate())).IsIdentity(), "aG + (-a)G == O")

	assert.True(t, g.Identity().X().IsZero())
	assert.True(t, g.Identity().Y().IsZero())
	assert.False(t, aG.Equal(bG))
}

func testPointCodec(t *testing.T, g group.Group) {
	p := g.Generator().Mul(randomScalar(t, g))
	require.Len(t, p.Bytes(), g.PointSize())

	decoded, err := g.PointFromBytes(p.Bytes())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(p))
	assert.True(t, decoded.X().Equal(p.X()))
	assert.True(t, decoded.Y().Equal(p.Y()))

	hexDecoded, err := group.PointFromHex(g, group.PointHex(p))
	require.NoError(t, err)
	assert.True(t, hexDecoded.Equal(p))

	id, err := g.PointFromBytes(g.Identity().Bytes())
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())

	_, err = g.PointFromBytes(p.Bytes()[1:])
	require.ErrorIs(t, err, cryptoerr.ErrInvalidPoint)
}

func testImmutability(t *testing.T, g group.Group) {
	a := randomScalar(t, g)
	before := a.Bytes()
	_ = a.Add(g.One())
	_ = a.Mul(a)
	_ = a.Inverse()
	assert.Equal(t, before, a.Bytes())

	buf := a.Bytes()
	buf[0] ^= 0xff
	assert.Equal(t, before, a.Bytes(), "Bytes must return a copy")

	p := g.Generator()
	pBefore := p.Bytes()
	_ = p.Add(p)
	_ = p.Mul(a)
	assert.Equal(t, pBefore, p.Bytes())
	assert.Equal(t, pBefore, g.Generator().Bytes())
}
