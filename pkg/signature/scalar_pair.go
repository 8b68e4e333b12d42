package signature

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

// ScalarPair is an (r, s) signature as produced by the ECDSA and SM2 engines.
// It encodes as r ‖ s, each scalar-width.
type ScalarPair struct {
	r, s group.Scalar
}

// NewScalarPair wraps r and s.
func NewScalarPair(r, s group.Scalar) *ScalarPair {
	return &ScalarPair{r: r, s: s}
}

func (p *ScalarPair) R() group.Scalar { return p.r }
func (p *ScalarPair) S() group.Scalar { return p.s }

// Bytes returns r ‖ s.
func (p *ScalarPair) Bytes() []byte {
	rb := p.r.Bytes()
	return append(rb[:len(rb):len(rb)], p.s.Bytes()...)
}

// Hex returns the hex encoding of Bytes.
func (p *ScalarPair) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// ParseScalarPair decodes r ‖ s for group g.
func ParseScalarPair(g group.Group, b []byte) (*ScalarPair, error) {
	n := g.ScalarSize()
	if len(b) != 2*n {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", 2*n, len(b)))
	}
	r, err := CanonicalScalar(g, b[:n])
	if err != nil {
		return nil, err
	}
	s, err := CanonicalScalar(g, b[n:])
	if err != nil {
		return nil, err
	}
	return &ScalarPair{r: r, s: s}, nil
}

// CanonicalScalar decodes a signature scalar. Unlike g.ScalarFromBytes it
// rejects values at or above the group order, so every signature has exactly
// one encoding.
func CanonicalScalar(g group.Group, b []byte) (group.Scalar, error) {
	v, err := g.ScalarFromBytes(b)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidSignature, Description: err.Error()}
	}
	if !bytes.Equal(v.Bytes(), b) {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidSignature, g.Name()+": non-canonical scalar encoding")
	}
	return v, nil
}

// ParseScalarPairHex decodes a hex-encoded r ‖ s.
func ParseScalarPairHex(g group.Group, s string) (*ScalarPair, error) {
	b, err := group.DecodeHex(s)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidSignature, Description: err.Error()}
	}
	return ParseScalarPair(g, b)
}
