// Package secp256k1 implements group.Group over the secp256k1 curve using the
// decred secp256k1 field and scalar arithmetic.
//
// Scalars are encoded as 32 big-endian bytes. Points are encoded in the
// 33-byte SEC1 compressed form; the identity encodes as 33 zero bytes.
package secp256k1

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

const (
	// ScalarSize is the size, in bytes, of an encoded scalar.
	ScalarSize = 32
	// PointSize is the size, in bytes, of a compressed point.
	PointSize = secp256k1.PubKeyBytesLenCompressed
)

// Group is the secp256k1 group. The zero value is ready to use.
type Group struct{}

var _ group.Group = Group{}

// New returns the secp256k1 group.
func New() Group {
	return Group{}
}

func (Group) Name() string    { return "secp256k1" }
func (Group) ScalarSize() int { return ScalarSize }
func (Group) PointSize() int  { return PointSize }

func (Group) Generator() group.Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &g)
	g.ToAffine()
	return &point{p: g}
}

func (Group) Identity() group.Point {
	return &point{}
}

func (Group) Zero() group.Scalar {
	return &scalar{}
}

func (Group) One() group.Scalar {
	var s scalar
	s.v.SetInt(1)
	return &s
}

func (g Group) Cofactor() group.Scalar {
	return g.One()
}

// RandomScalar reads 32 bytes at a time until they encode a value below the
// group order.
func (Group) RandomScalar(rand io.Reader) (group.Scalar, error) {
	var buf [ScalarSize]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("secp256k1: failed to read random scalar: %w", err)
		}
		var s scalar
		if overflow := s.v.SetBytes(&buf); overflow == 0 {
			return &s, nil
		}
	}
}

// ScalarFromBytes decodes a 32-byte big-endian scalar modulo N.
func (Group) ScalarFromBytes(b []byte) (group.Scalar, error) {
	if err := group.CheckScalarSize("secp256k1", b, ScalarSize); err != nil {
		return nil, err
	}
	var s scalar
	s.v.SetByteSlice(b)
	return &s, nil
}

// PointFromBytes decodes a 33-byte compressed point.
func (Group) PointFromBytes(b []byte) (group.Point, error) {
	if err := group.CheckPointSize("secp256k1", b, PointSize); err != nil {
		return nil, err
	}
	if isZeroBytes(b) {
		return &point{}, nil
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidPoint, Description: "secp256k1: " + err.Error()}
	}
	var p point
	pub.AsJacobian(&p.p)
	return &p, nil
}

type scalar struct {
	v secp256k1.ModNScalar
}

func mustScalar(s group.Scalar) *scalar {
	sc, ok := s.(*scalar)
	if !ok {
		panic(fmt.Sprintf("secp256k1: foreign scalar type %T", s))
	}
	return sc
}

func (s *scalar) Add(b group.Scalar) group.Scalar {
	var r scalar
	r.v.Add2(&s.v, &mustScalar(b).v)
	return &r
}

func (s *scalar) Sub(b group.Scalar) group.Scalar {
	var neg secp256k1.ModNScalar
	neg.NegateVal(&mustScalar(b).v)
	var r scalar
	r.v.Add2(&s.v, &neg)
	return &r
}

func (s *scalar) Mul(b group.Scalar) group.Scalar {
	var r scalar
	r.v.Mul2(&s.v, &mustScalar(b).v)
	return &r
}

func (s *scalar) Negate() group.Scalar {
	var r scalar
	r.v.NegateVal(&s.v)
	return &r
}

func (s *scalar) Inverse() group.Scalar {
	var r scalar
	if s.v.IsZero() {
		return &r
	}
	r.v.InverseValNonConst(&s.v)
	return &r
}

func (s *scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *scalar) Equal(b group.Scalar) bool {
	return s.v.Equals(&mustScalar(b).v)
}

// Bytes returns the 32-byte big-endian encoding.
func (s *scalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

func (s *scalar) String() string {
	return fmt.Sprintf("%x", s.Bytes())
}

// point is kept in affine form (Z == 1) except for the identity, which is the
// zero JacobianPoint.
type point struct {
	p secp256k1.JacobianPoint
}

func mustPoint(p group.Point) *point {
	pt, ok := p.(*point)
	if !ok {
		panic(fmt.Sprintf("secp256k1: foreign point type %T", p))
	}
	return pt
}

func (p *point) Add(q group.Point) group.Point {
	var r point
	secp256k1.AddNonConst(&p.p, &mustPoint(q).p, &r.p)
	r.normalize()
	return &r
}

func (p *point) Mul(k group.Scalar) group.Point {
	var r point
	secp256k1.ScalarMultNonConst(&mustScalar(k).v, &p.p, &r.p)
	r.normalize()
	return &r
}

func (p *point) normalize() {
	if p.IsIdentity() {
		p.p = secp256k1.JacobianPoint{}
		return
	}
	p.p.ToAffine()
}

func (p *point) X() group.Scalar {
	var s scalar
	if p.IsIdentity() {
		return &s
	}
	s.v.SetBytes(p.p.X.Bytes())
	return &s
}

func (p *point) Y() group.Scalar {
	var s scalar
	if p.IsIdentity() {
		return &s
	}
	s.v.SetBytes(p.p.Y.Bytes())
	return &s
}

func (p *point) IsIdentity() bool {
	return (p.p.X.IsZero() && p.p.Y.IsZero()) || p.p.Z.IsZero()
}

func (p *point) Equal(q group.Point) bool {
	o := mustPoint(q)
	if p.IsIdentity() || o.IsIdentity() {
		return p.IsIdentity() == o.IsIdentity()
	}
	return p.p.X.Equals(&o.p.X) && p.p.Y.Equals(&o.p.Y)
}

// Bytes returns the 33-byte SEC1 compressed encoding.
func (p *point) Bytes() []byte {
	if p.IsIdentity() {
		return make([]byte, PointSize)
	}
	x, y := p.p.X, p.p.Y
	return secp256k1.NewPublicKey(&x, &y).SerializeCompressed()
}

func (p *point) String() string {
	return fmt.Sprintf("%x", p.Bytes())
}

func isZeroBytes(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
