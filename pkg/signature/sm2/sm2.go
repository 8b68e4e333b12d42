// Package sm2 implements the SM2 signature scheme over any group.Group.
//
// Signing a digest e with secret d:
//
//	k random, nonzero
//	r = e + (k·G).x           retry while r == 0 or r + k == 0
//	s = (1 + d)⁻¹·(k − r·d)   s == 0 is a terminal ErrSM2Signature
//
// Verify takes the raw message and hashes it itself, while Sign takes a
// digest. SignMessage is the counterpart of Verify.
package sm2

import (
	"io"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
)

const scheme = "sm2"

// Signature is an (r, s) pair encoded as r ‖ s.
type Signature = signature.ScalarPair

// Signer signs and verifies over one group with one digest.
type Signer struct {
	group  group.Group
	digest digest.Algorithm
	opts   signature.Options
}

// New returns a Signer for g hashing messages with d. The digest width must
// equal the scalar width.
func New(g group.Group, d digest.Algorithm, opts ...signature.Option) (*Signer, error) {
	o, err := signature.Resolve(g, scheme, true, append(opts[:len(opts):len(opts)], signature.WithDigest(d))...)
	if err != nil {
		return nil, err
	}
	return &Signer{group: g, digest: d, opts: o}, nil
}

// Group returns the signer's group.
func (s *Signer) Group() group.Group { return s.group }

// Sign signs a scalar-width digest with secret, drawing nonces from rand.
//
// A nonce giving r == 0 or r + k == 0 is redrawn. If s comes out zero the
// call fails with ErrSM2Signature; the caller may start over.
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

		r := e.Add(s.group.Generator().Mul(k).X())
		if r.IsZero() || r.Add(k).IsZero() {
			s.opts.Logger.Debug("degenerate r, retrying", "scheme", scheme, "attempt", attempt)
			continue
		}

		s1 := s.group.One().Add(secret).Inverse()
		sv := s1.Mul(k.Sub(r.Mul(secret)))
		if sv.IsZero() {
			return nil, cryptoerr.New(cryptoerr.ErrSM2Signature, "sm2: signature s is zero")
		}
		return signature.NewScalarPair(r, sv), nil
	}
	return nil, signature.RetryLimit(scheme, s.opts.MaxAttempts)
}

// SignMessage hashes message with the signer's digest and signs the result.
func (s *Signer) SignMessage(message []byte, secret group.Scalar, rand io.Reader) (*Signature, error) {
	return s.Sign(s.digest.Sum(message), secret, rand)
}

// Verify hashes message and reports whether sig is valid under public.
func (s *Signer) Verify(message []byte, public group.Point, sig *Signature) bool {
	if sig == nil || public == nil {
		return false
	}
	r, sv := sig.R(), sig.S()
	if r.IsZero() || sv.IsZero() {
		return false
	}
	t := r.Add(sv)
	if t.IsZero() {
		return false
	}

	e, err := s.group.ScalarFromBytes(s.digest.Sum(message))
	if err != nil {
		return false
	}
	p := s.group.Generator().Mul(sv).Add(public.Mul(t))
	return e.Add(p.X()).Equal(r)
}

// VerifyBytes parses an encoded signature and verifies it against message.
func (s *Signer) VerifyBytes(message []byte, public group.Point, sig []byte) bool {
	parsed, err := signature.ParseScalarPair(s.group, sig)
	if err != nil {
		return false
	}
	return s.Verify(message, public, parsed)
}
