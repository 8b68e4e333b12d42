// Package group defines the prime-order (or cofactor-h) elliptic-curve group
// abstraction that the keypair and signature engines are written against.
//
// Implementations live in sub packages, one per curve:
//
//   - sm2p256: the SM2 recommended 256-bit curve
//   - secp256k1: the secp256k1 curve
//   - edwards25519: the Ed25519 prime-order subgroup (cofactor 8)
//
// All Scalar and Point values are immutable.  Every arithmetic method returns a
// fresh value and leaves its receiver and arguments untouched, so values can be
// shared between goroutines without locking.  Mixing values from different
// groups is a programming error and panics.
package group

import (
	"io"
)

// Scalar is an element of the scalar field, i.e. an integer modulo the group
// order.
type Scalar interface {
	// Add returns the receiver plus b.
	Add(b Scalar) Scalar
	// Sub returns the receiver minus b.
	Sub(b Scalar) Scalar
	// Mul returns the receiver times b.
	Mul(b Scalar) Scalar
	// Negate returns the additive inverse of the receiver.
	Negate() Scalar
	// Inverse returns the multiplicative inverse of the receiver. The inverse
	// of zero is zero.
	Inverse() Scalar
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// Bytes returns the fixed-width encoding of the scalar.
	Bytes() []byte
}

// Point is an element of the group.
type Point interface {
	// Add returns the receiver plus q.
	Add(q Point) Point
	// Mul returns k times the receiver.
	Mul(k Scalar) Point
	// X returns the affine x coordinate reduced into the scalar field. The
	// identity yields zero.
	X() Scalar
	// Y returns the affine y coordinate reduced into the scalar field. The
	// identity yields zero.
	Y() Scalar
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// Equal reports whether the receiver equals q.
	Equal(q Point) bool
	// Bytes returns the fixed-width encoding of the point.
	Bytes() []byte
}

// Group is a cyclic group with a distinguished generator together with the
// fixed-width codecs for its scalars and points.
type Group interface {
	// Name returns a short identifier such as "sm2p256".
	Name() string
	// ScalarSize is the width in bytes of an encoded scalar.
	ScalarSize() int
	// PointSize is the width in bytes of an encoded point.
	PointSize() int

	// Generator returns the group generator.
	Generator() Point
	// Identity returns the identity element.
	Identity() Point

	// Zero returns the scalar 0.
	Zero() Scalar
	// One returns the scalar 1.
	One() Scalar
	// Cofactor returns the curve cofactor as a scalar. Prime-order groups
	// return one.
	Cofactor() Scalar
	// RandomScalar draws a uniformly random scalar from rand. The result may
	// be zero with negligible probability.
	RandomScalar(rand io.Reader) (Scalar, error)

	// ScalarFromBytes decodes exactly ScalarSize bytes, reducing the value
	// modulo the group order.
	ScalarFromBytes(b []byte) (Scalar, error)
	// PointFromBytes decodes exactly PointSize bytes and validates that the
	// result is on the curve.
	PointFromBytes(b []byte) (Point, error)
}
