// Package schnorr implements a deterministic Schnorr-style signature scheme
// over any group.Group.
//
// The nonce is derived from the keypair code, so signing needs no randomness:
//
//	r = H(code ‖ e)          R = r·G
//	k = H(R ‖ P ‖ e)         s = r + x·k
//
// Verification multiplies both sides by the group cofactor c, applied after
// the challenge so that small-order components of R or P are cleared:
//
//	c·s·G == c·R + c·(k·P)
package schnorr

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/keypair"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
)

const scheme = "schnorr"

// Signature is a commitment point R and response scalar s, encoded as R ‖ s.
type Signature struct {
	r group.Point
	s group.Scalar
}

// NewSignature wraps R and s.
func NewSignature(r group.Point, s group.Scalar) *Signature {
	return &Signature{r: r, s: s}
}

func (sig *Signature) R() group.Point  { return sig.r }
func (sig *Signature) S() group.Scalar { return sig.s }

// Bytes returns R ‖ s.
func (sig *Signature) Bytes() []byte {
	rb := sig.r.Bytes()
	return append(rb[:len(rb):len(rb)], sig.s.Bytes()...)
}

// Hex returns the hex encoding of Bytes.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Bytes())
}

// ParseSignature decodes R ‖ s for group g. R must be a valid point and both
// halves must be canonically encoded.
func ParseSignature(g group.Group, b []byte) (*Signature, error) {
	if len(b) != g.PointSize()+g.ScalarSize() {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", g.PointSize()+g.ScalarSize(), len(b)))
	}
	rb := b[:g.PointSize()]
	r, err := g.PointFromBytes(rb)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidSignature, Description: err.Error()}
	}
	if !bytes.Equal(r.Bytes(), rb) {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidSignature, g.Name()+": non-canonical point encoding")
	}
	s, err := signature.CanonicalScalar(g, b[g.PointSize():])
	if err != nil {
		return nil, err
	}
	return &Signature{r: r, s: s}, nil
}

// ParseSignatureHex decodes a hex-encoded R ‖ s.
func ParseSignatureHex(g group.Group, s string) (*Signature, error) {
	b, err := group.DecodeHex(s)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidSignature, Description: err.Error()}
	}
	return ParseSignature(g, b)
}

// Signer signs and verifies over one group with one digest.
type Signer struct {
	group  group.Group
	digest digest.Algorithm
	opts   signature.Options
}

// New returns a Signer for g hashing with d. The digest width must equal the
// scalar width.
func New(g group.Group, d digest.Algorithm, opts ...signature.Option) (*Signer, error) {
	o, err := signature.Resolve(g, scheme, true, append(opts[:len(opts):len(opts)], signature.WithDigest(d))...)
	if err != nil {
		return nil, err
	}
	return &Signer{group: g, digest: d, opts: o}, nil
}

// Group returns the signer's group.
func (s *Signer) Group() group.Group { return s.group }

// Sign signs a scalar-width digest with kp. The same digest and keypair always
// produce the same signature.
func (s *Signer) Sign(digest []byte, kp *keypair.Keypair) (*Signature, error) {
	if err := signature.CheckDigest(s.group, digest); err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidKeypair, "schnorr: nil keypair")
	}

	r, err := s.group.ScalarFromBytes(s.digest.Sum(kp.Code(), digest))
	if err != nil {
		return nil, err
	}
	commitment := s.group.Generator().Mul(r)

	k, err := s.challenge(commitment, kp.Public(), digest)
	if err != nil {
		return nil, err
	}
	return &Signature{r: commitment, s: r.Add(kp.Secret().Mul(k))}, nil
}

func (s *Signer) challenge(r, public group.Point, digest []byte) (group.Scalar, error) {
	return s.group.ScalarFromBytes(s.digest.Sum(r.Bytes(), public.Bytes(), digest))
}

// Verify reports whether sig is a valid signature of digest under public.
func (s *Signer) Verify(digest []byte, public group.Point, sig *Signature) bool {
	if sig == nil || public == nil || signature.CheckDigest(s.group, digest) != nil {
		return false
	}
	k, err := s.challenge(sig.r, public, digest)
	if err != nil {
		return false
	}

	c := s.group.Cofactor()
	lhs := s.group.Generator().Mul(c.Mul(sig.s))
	rhs := sig.r.Mul(c).Add(public.Mul(k).Mul(c))
	return lhs.Equal(rhs)
}

// VerifyBytes parses an encoded signature and verifies it.
func (s *Signer) VerifyBytes(digest []byte, public group.Point, sig []byte) bool {
	parsed, err := ParseSignature(s.group, sig)
	if err != nil {
		return false
	}
	return s.Verify(digest, public, parsed)
}

// SignMessage hashes message and signs the digest.
func (s *Signer) SignMessage(message []byte, kp *keypair.Keypair) (*Signature, error) {
	return s.Sign(s.digest.Sum(message), kp)
}

// VerifyMessage hashes message and verifies sig.
func (s *Signer) VerifyMessage(message []byte, public group.Point, sig *Signature) bool {
	return s.Verify(s.digest.Sum(message), public, sig)
}
