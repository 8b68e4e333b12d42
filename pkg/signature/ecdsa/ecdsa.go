// Package ecdsa implements the ECDSA-style signature scheme over any
// group.Group.
//
// Signing a digest e with secret x:
//
//	k  random, nonzero
//	r  = (k·G).x
//	s  = k⁻¹·(e + r·x)
//
// Verification accepts (r, s) iff (s⁻¹·e·G + s⁻¹·r·P).x == r.
package ecdsa

import (
	"io"

	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
)

const scheme = "ecdsa"

// Signature is an (r, s) pair encoded as r ‖ s.
type Signature = signature.ScalarPair

// Signer signs and verifies over one group. It is immutable and safe for
// concurrent use.
type Signer struct {
	group group.Group
	opts  signature.Options
}

// New returns a Signer for g. A digest is only needed for the *Message
// helpers; when given, its width must equal the scalar width.
func New(g group.Group, opts ...signature.Option) (*Signer, error) {
	o, err := signature.Resolve(g, scheme, false, opts...)
	if err != nil {
		return nil, err
	}
	return &Signer{group: g, opts: o}, nil
}

// Group returns the signer's group.
func (s *Signer) Group() group.Group { return s.group }

// Sign signs a scalar-width digest with secret, drawing nonces from rand.
// Degenerate nonces (k, r or s zero) are redrawn up to the attempt budget.
func (s *Signer) Sign(digest []byte, secret group.Scalar, rand io.Reader) (*Signature, error) {
	if err := signature.CheckDigest(s.group, digest); err != nil {
		return nil, err
	}
	e, err := s.group.ScalarFromBytes(digest)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		k, err := s.group.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		if k.IsZero() {
			s.opts.Logger.Debug("zero nonce, retrying", "scheme", scheme, "attempt", attempt)
			continue
		}

		r := s.group.Generator().Mul(k).X()
		sv := e.Add(r.Mul(secret))
		if r.IsZero() || sv.IsZero() {
			s.opts.Logger.Debug("degenerate signature, retrying", "scheme", scheme, "attempt", attempt)
			continue
		}
		return signature.NewScalarPair(r, k.Inverse().Mul(sv)), nil
	}
	return nil, signature.RetryLimit(scheme, s.opts.MaxAttempts)
}

// Verify reports whether sig is a valid signature of digest under public.
// Malformed input yields false; r or s equal to zero is rejected.
func (s *Signer) Verify(digest []byte, public group.Point, sig *Signature) bool {
	if sig == nil || public == nil || signature.CheckDigest(s.group, digest) != nil {
		return false
	}
	r, sv := sig.R(), sig.S()
	if r.IsZero() || sv.IsZero() {
		return false
	}
	e, err := s.group.ScalarFromBytes(digest)
	if err != nil {
		return false
	}

	w := sv.Inverse()
	p := s.group.Generator().Mul(w.Mul(e)).Add(public.Mul(w.Mul(r)))
	return p.X().Equal(r)
}

// VerifyBytes parses an encoded signature and verifies it.
func (s *Signer) VerifyBytes(digest []byte, public group.Point, sig []byte) bool {
	parsed, err := signature.ParseScalarPair(s.group, sig)
	if err != nil {
		return false
	}
	return s.Verify(digest, public, parsed)
}

// SignMessage hashes message with the configured digest and signs it.
func (s *Signer) SignMessage(message []byte, secret group.Scalar, rand io.Reader) (*Signature, error) {
	if s.opts.Digest.IsZero() {
		return nil, signature.NoDigest(scheme)
	}
	return s.Sign(s.opts.Digest.Sum(message), secret, rand)
}

// VerifyMessage hashes message with the configured digest and verifies sig.
func (s *Signer) VerifyMessage(message []byte, public group.Point, sig *Signature) bool {
	if s.opts.Digest.IsZero() {
		return false
	}
	return s.Verify(s.opts.Digest.Sum(message), public, sig)
}
