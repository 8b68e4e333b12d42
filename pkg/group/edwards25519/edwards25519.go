// Package edwards25519 implements group.Group over the twisted Edwards form of
// Curve25519, the group used by Ed25519.
//
// The full curve group has cofactor 8; callers that need to clear small-order
// components multiply by Cofactor(). Scalars and points are both 32-byte
// little-endian encodings as defined by RFC 8032.
package edwards25519

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

const (
	// ScalarSize is the size, in bytes, of an encoded scalar.
	ScalarSize = 32
	// PointSize is the size, in bytes, of an encoded point.
	PointSize = 32
	// Cofactor is the order of the small torsion subgroup.
	Cofactor = 8
)

// Group is the edwards25519 group. The zero value is ready to use.
type Group struct{}

var _ group.Group = Group{}

// New returns the edwards25519 group.
func New() Group {
	return Group{}
}

func (Group) Name() string    { return "edwards25519" }
func (Group) ScalarSize() int { return ScalarSize }
func (Group) PointSize() int  { return PointSize }

func (Group) Generator() group.Point {
	return &point{p: edwards25519.NewGeneratorPoint()}
}

func (Group) Identity() group.Point {
	return &point{p: edwards25519.NewIdentityPoint()}
}

func (Group) Zero() group.Scalar {
	return &scalar{s: edwards25519.NewScalar()}
}

func (Group) One() group.Scalar {
	return &scalar{s: smallScalar(1)}
}

func (Group) Cofactor() group.Scalar {
	return &scalar{s: smallScalar(Cofactor)}
}

// RandomScalar reduces 64 random bytes modulo the group order.
func (Group) RandomScalar(rand io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, fmt.Errorf("edwards25519: failed to read random scalar: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return nil, fmt.Errorf("edwards25519: %w", err)
	}
	return &scalar{s: s}, nil
}

// ScalarFromBytes decodes a 32-byte little-endian value modulo the group
// order. Non-canonical encodings are reduced rather than rejected.
func (Group) ScalarFromBytes(b []byte) (group.Scalar, error) {
	if err := group.CheckScalarSize("edwards25519", b, ScalarSize); err != nil {
		return nil, err
	}
	return &scalar{s: reduce(b)}, nil
}

// PointFromBytes decodes a 32-byte compressed Edwards point.
func (Group) PointFromBytes(b []byte) (group.Point, error) {
	if err := group.CheckPointSize("edwards25519", b, PointSize); err != nil {
		return nil, err
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidPoint, Description: "edwards25519: " + err.Error()}
	}
	return &point{p: p}, nil
}

// reduce pads the 32-byte little-endian value to 64 bytes so SetUniformBytes
// performs a plain reduction modulo l.
func reduce(b []byte) *edwards25519.Scalar {
	wide := make([]byte, 64)
	copy(wide, b)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide)
	if err != nil {
		// SetUniformBytes only fails on a length other than 64.
		panic(err)
	}
	return s
}

func smallScalar(v byte) *edwards25519.Scalar {
	b := make([]byte, ScalarSize)
	b[0] = v
	return reduce(b)
}

type scalar struct {
	s *edwards25519.Scalar
}

func mustScalar(s group.Scalar) *scalar {
	sc, ok := s.(*scalar)
	if !ok {
		panic(fmt.Sprintf("edwards25519: foreign scalar type %T", s))
	}
	return sc
}

func (s *scalar) Add(b group.Scalar) group.Scalar {
	return &scalar{s: edwards25519.NewScalar().Add(s.s, mustScalar(b).s)}
}

func (s *scalar) Sub(b group.Scalar) group.Scalar {
	return &scalar{s: edwards25519.NewScalar().Subtract(s.s, mustScalar(b).s)}
}

func (s *scalar) Mul(b group.Scalar) group.Scalar {
	return &scalar{s: edwards25519.NewScalar().Multiply(s.s, mustScalar(b).s)}
}

func (s *scalar) Negate() group.Scalar {
	return &scalar{s: edwards25519.NewScalar().Negate(s.s)}
}

// Inverse relies on Scalar.Invert mapping zero to zero.
func (s *scalar) Inverse() group.Scalar {
	return &scalar{s: edwards25519.NewScalar().Invert(s.s)}
}

func (s *scalar) IsZero() bool {
	return s.s.Equal(edwards25519.NewScalar()) == 1
}

func (s *scalar) Equal(b group.Scalar) bool {
	return s.s.Equal(mustScalar(b).s) == 1
}

func (s *scalar) Bytes() []byte {
	return s.s.Bytes()
}

func (s *scalar) String() string {
	return fmt.Sprintf("%x", s.Bytes())
}

type point struct {
	p *edwards25519.Point
}

func mustPoint(p group.Point) *point {
	pt, ok := p.(*point)
	if !ok {
		panic(fmt.Sprintf("edwards25519: foreign point type %T", p))
	}
	return pt
}

func (p *point) Add(q group.Point) group.Point {
	return &point{p: edwards25519.NewIdentityPoint().Add(p.p, mustPoint(q).p)}
}

func (p *point) Mul(k group.Scalar) group.Point {
	return &point{p: edwards25519.NewIdentityPoint().ScalarMult(mustScalar(k).s, p.p)}
}

// affine returns the affine (x, y) coordinates of p.
func (p *point) affine() (x, y *field.Element) {
	X, Y, Z, _ := p.p.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	return new(field.Element).Multiply(X, zInv), new(field.Element).Multiply(Y, zInv)
}

// X reduces the affine x coordinate modulo the group order. The identity
// (0, 1) yields zero.
func (p *point) X() group.Scalar {
	x, _ := p.affine()
	return &scalar{s: reduce(x.Bytes())}
}

// Y reduces the affine y coordinate modulo the group order. The identity
// yields zero to match the other groups.
func (p *point) Y() group.Scalar {
	if p.IsIdentity() {
		return &scalar{s: edwards25519.NewScalar()}
	}
	_, y := p.affine()
	return &scalar{s: reduce(y.Bytes())}
}

func (p *point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *point) Equal(q group.Point) bool {
	return p.p.Equal(mustPoint(q).p) == 1
}

func (p *point) Bytes() []byte {
	return p.p.Bytes()
}

func (p *point) String() string {
	return fmt.Sprintf("%x", p.Bytes())
}
