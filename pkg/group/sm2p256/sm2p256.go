// Package sm2p256 implements group.Group over the SM2 recommended 256-bit
// curve (GB/T 32918.5).
//
// Scalars are encoded as 32 little-endian bytes. Points are encoded in the
// 33-byte SEC1 compressed form; the identity encodes as 33 zero bytes.
package sm2p256

import (
	"crypto/elliptic"
	"fmt"
	"io"
	"math/big"

	"github.com/emmansun/gmsm/sm2"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

const (
	// ScalarSize is the size, in bytes, of an encoded scalar.
	ScalarSize = 32
	// PointSize is the size, in bytes, of a compressed point.
	PointSize = 33
)

var (
	curve = sm2.P256()
	order = curve.Params().N
)

// Group is the SM2 P-256 group. The zero value is ready to use.
type Group struct{}

var _ group.Group = Group{}

// New returns the SM2 P-256 group.
func New() Group {
	return Group{}
}

// Curve exposes the underlying elliptic.Curve.
func (Group) Curve() elliptic.Curve {
	return curve
}

func (Group) Name() string    { return "sm2p256" }
func (Group) ScalarSize() int { return ScalarSize }
func (Group) PointSize() int  { return PointSize }

func (Group) Generator() group.Point {
	params := curve.Params()
	return &point{x: new(big.Int).Set(params.Gx), y: new(big.Int).Set(params.Gy)}
}

func (Group) Identity() group.Point {
	return &point{x: new(big.Int), y: new(big.Int)}
}

func (Group) Zero() group.Scalar     { return &scalar{v: new(big.Int)} }
func (Group) One() group.Scalar      { return &scalar{v: big.NewInt(1)} }
func (Group) Cofactor() group.Scalar { return &scalar{v: big.NewInt(1)} }

// RandomScalar returns a uniform scalar in [0, N).
func (Group) RandomScalar(rand io.Reader) (group.Scalar, error) {
	buf := make([]byte, ScalarSize+16)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, fmt.Errorf("sm2p256: failed to read random scalar: %w", err)
	}
	v := new(big.Int).SetBytes(buf)
	return &scalar{v: v.Mod(v, order)}, nil
}

// ScalarFromBytes decodes a 32-byte little-endian scalar modulo N.
func (Group) ScalarFromBytes(b []byte) (group.Scalar, error) {
	if err := group.CheckScalarSize("sm2p256", b, ScalarSize); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(group.ReverseBytes(b))
	return &scalar{v: v.Mod(v, order)}, nil
}

// PointFromBytes decodes a 33-byte compressed point.
func (Group) PointFromBytes(b []byte) (group.Point, error) {
	if err := group.CheckPointSize("sm2p256", b, PointSize); err != nil {
		return nil, err
	}
	if isZeroBytes(b) {
		return &point{x: new(big.Int), y: new(big.Int)}, nil
	}
	x, y := elliptic.UnmarshalCompressed(curve, b)
	if x == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidPoint, "sm2p256: point is not on the curve")
	}
	return &point{x: x, y: y}, nil
}

type scalar struct {
	v *big.Int
}

func mustScalar(s group.Scalar) *scalar {
	sc, ok := s.(*scalar)
	if !ok {
		panic(fmt.Sprintf("sm2p256: foreign scalar type %T", s))
	}
	return sc
}

func (s *scalar) Add(b group.Scalar) group.Scalar {
	v := new(big.Int).Add(s.v, mustScalar(b).v)
	return &scalar{v: v.Mod(v, order)}
}

func (s *scalar) Sub(b group.Scalar) group.Scalar {
	v := new(big.Int).Sub(s.v, mustScalar(b).v)
	return &scalar{v: v.Mod(v, order)}
}

func (s *scalar) Mul(b group.Scalar) group.Scalar {
	v := new(big.Int).Mul(s.v, mustScalar(b).v)
	return &scalar{v: v.Mod(v, order)}
}

func (s *scalar) Negate() group.Scalar {
	v := new(big.Int).Neg(s.v)
	return &scalar{v: v.Mod(v, order)}
}

func (s *scalar) Inverse() group.Scalar {
	if s.v.Sign() == 0 {
		return &scalar{v: new(big.Int)}
	}
	return &scalar{v: new(big.Int).ModInverse(s.v, order)}
}

func (s *scalar) IsZero() bool {
	return s.v.Sign() == 0
}

func (s *scalar) Equal(b group.Scalar) bool {
	return s.v.Cmp(mustScalar(b).v) == 0
}

// Bytes returns the 32-byte little-endian encoding.
func (s *scalar) Bytes() []byte {
	return group.ReverseBytes(s.v.FillBytes(make([]byte, ScalarSize)))
}

func (s *scalar) String() string {
	return fmt.Sprintf("%x", s.Bytes())
}

// point holds affine coordinates; the identity is (0, 0) as in crypto/elliptic.
type point struct {
	x, y *big.Int
}

func mustPoint(p group.Point) *point {
	pt, ok := p.(*point)
	if !ok {
		panic(fmt.Sprintf("sm2p256: foreign point type %T", p))
	}
	return pt
}

func (p *point) Add(q group.Point) group.Point {
	o := mustPoint(q)
	if p.IsIdentity() {
		return &point{x: new(big.Int).Set(o.x), y: new(big.Int).Set(o.y)}
	}
	if o.IsIdentity() {
		return &point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
	}
	x, y := curve.Add(p.x, p.y, o.x, o.y)
	return &point{x: x, y: y}
}

func (p *point) Mul(k group.Scalar) group.Point {
	kb := mustScalar(k).v.FillBytes(make([]byte, ScalarSize))
	if p.IsIdentity() || mustScalar(k).IsZero() {
		return &point{x: new(big.Int), y: new(big.Int)}
	}
	var x, y *big.Int
	if p.isGenerator() {
		x, y = curve.ScalarBaseMult(kb)
	} else {
		x, y = curve.ScalarMult(p.x, p.y, kb)
	}
	return &point{x: x, y: y}
}

func (p *point) isGenerator() bool {
	params := curve.Params()
	return p.x.Cmp(params.Gx) == 0 && p.y.Cmp(params.Gy) == 0
}

func (p *point) X() group.Scalar {
	v := new(big.Int).Mod(p.x, order)
	return &scalar{v: v}
}

func (p *point) Y() group.Scalar {
	v := new(big.Int).Mod(p.y, order)
	return &scalar{v: v}
}

func (p *point) IsIdentity() bool {
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

func (p *point) Equal(q group.Point) bool {
	o := mustPoint(q)
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}

// Bytes returns the 33-byte SEC1 compressed encoding.
func (p *point) Bytes() []byte {
	if p.IsIdentity() {
		return make([]byte, PointSize)
	}
	return elliptic.MarshalCompressed(curve, p.x, p.y)
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
