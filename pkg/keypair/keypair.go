// Package keypair derives keypairs deterministically from seeds.
//
// A seed of the group's scalar width is hashed with a splittable digest whose
// output is twice the scalar width. The first half is reduced into the secret
// scalar, the second half is kept as the keypair code:
//
//	sk, code = split(H(seed))
//	secret   = scalar(sk)
//	public   = secret · G
//
// Derivation is a pure function of the seed for a given group and digest.
package keypair

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

// Engine derives keypairs over one group with one seed hash.
type Engine struct {
	group    group.Group
	seedHash digest.Algorithm
}

// NewEngine returns an Engine for g. The seed hash must produce exactly twice
// the scalar width so that its output splits into a secret half and a code
// half.
func NewEngine(g group.Group, seedHash digest.Algorithm) (*Engine, error) {
	if err := seedHash.RequireSize(2*g.ScalarSize(), "keypair"); err != nil {
		return nil, err
	}
	return &Engine{group: g, seedHash: seedHash}, nil
}

// Group returns the group the engine derives keys over.
func (e *Engine) Group() group.Group { return e.group }

// SeedSize returns the required seed width in bytes.
func (e *Engine) SeedSize() int { return e.group.ScalarSize() }

// Generate draws a fresh seed from rand and derives a keypair from it.
func (e *Engine) Generate(rand io.Reader) (*Keypair, error) {
	seed := make([]byte, e.SeedSize())
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return e.FromSeed(seed)
}

// FromSeed derives the keypair for seed. A seed that hashes to the zero scalar
// fails with ErrKeyPairGen; the same seed always fails the same way.
func (e *Engine) FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != e.SeedSize() {
		return nil, cryptoerr.New(cryptoerr.ErrSeedSize,
			fmt.Sprintf("seed must be %d bytes, got %d", e.SeedSize(), len(seed)))
	}

	h := e.seedHash.New()
	h.Update(seed)
	sk, code := h.FinalizeSplit()

	secret, err := e.group.ScalarFromBytes(sk)
	if err != nil {
		return nil, err
	}
	if secret.IsZero() {
		return nil, cryptoerr.New(cryptoerr.ErrKeyPairGen, "seed hashes to the zero scalar")
	}

	return &Keypair{
		seed:   bytes.Clone(seed),
		secret: secret,
		public: e.group.Generator().Mul(secret),
		code:   code,
	}, nil
}

// Keypair is a derived {seed, secret, public, code} tuple. It is immutable.
type Keypair struct {
	seed   []byte
	secret group.Scalar
	public group.Point
	code   []byte
}

// Seed returns a copy of the seed the keypair was derived from.
func (k *Keypair) Seed() []byte { return bytes.Clone(k.seed) }

// Secret returns the secret scalar.
func (k *Keypair) Secret() group.Scalar { return k.secret }

// Public returns the public point.
func (k *Keypair) Public() group.Point { return k.public }

// Code returns a copy of the nonce-derivation code.
func (k *Keypair) Code() []byte { return bytes.Clone(k.code) }

type keypairJSON struct {
	Seed      string `json:"seed"`
	SecretKey string `json:"secret_key"`
	PublicKey string `json:"public_key"`
	Code      string `json:"code"`
}

// MarshalJSON encodes every field as hex.
func (k *Keypair) MarshalJSON() ([]byte, error) {
	return json.Marshal(keypairJSON{
		Seed:      hex.EncodeToString(k.seed),
		SecretKey: group.ScalarHex(k.secret),
		PublicKey: group.PointHex(k.public),
		Code:      hex.EncodeToString(k.code),
	})
}

// UnmarshalKeypair decodes a keypair produced by MarshalJSON. The keypair is
// re-derived from its seed and every other field must match.
func (e *Engine) UnmarshalKeypair(data []byte) (*Keypair, error) {
	var raw keypairJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidKeypair, Description: err.Error()}
	}
	seed, err := group.DecodeHex(raw.Seed)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidKeypair, Description: "seed: " + err.Error()}
	}
	kp, err := e.FromSeed(seed)
	if err != nil {
		return nil, err
	}

	check := func(field, got, want string) error {
		if got != want {
			return cryptoerr.New(cryptoerr.ErrInvalidKeypair,
				fmt.Sprintf("%s does not match the value derived from the seed", field))
		}
		return nil
	}
	if err := check("secret_key", raw.SecretKey, group.ScalarHex(kp.secret)); err != nil {
		return nil, err
	}
	if err := check("public_key", raw.PublicKey, group.PointHex(kp.public)); err != nil {
		return nil, err
	}
	if err := check("code", raw.Code, hex.EncodeToString(kp.code)); err != nil {
		return nil, err
	}
	return kp, nil
}
