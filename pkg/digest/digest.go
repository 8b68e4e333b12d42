// Package digest provides the incremental hash abstraction used by the keypair
// and signature engines.
//
// An Algorithm is an immutable description of a hash function; each call to
// New returns an independent Hasher. FinalizeSplit is only used for seed
// hashing, where one wide digest is split into a secret half and a code half.
package digest

import (
	"fmt"
	"hash"
	"strings"

	"github.com/emmansun/gmsm/sm3"
	"golang.org/x/crypto/sha3"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
)

// Algorithm describes a fixed-width hash function.
type Algorithm struct {
	name    string
	size    int
	newHash func() hash.Hash
}

// NewAlgorithm wraps a hash.Hash constructor. The size is taken from the hash
// itself.
func NewAlgorithm(name string, newHash func() hash.Hash) Algorithm {
	return Algorithm{name: name, size: newHash().Size(), newHash: newHash}
}

var (
	// SHA3_256 is FIPS 202 SHA3-256.
	SHA3_256 = NewAlgorithm("sha3-256", sha3.New256)
	// SHA3_512 is FIPS 202 SHA3-512. Its 64-byte output splits into two
	// 32-byte halves for seed hashing.
	SHA3_512 = NewAlgorithm("sha3-512", sha3.New512)
	// Keccak256 is the legacy Keccak-256 used by Ethereum.
	Keccak256 = NewAlgorithm("keccak256", sha3.NewLegacyKeccak256)
	// SM3 is the GB/T 32905 hash.
	SM3 = NewAlgorithm("sm3", sm3.New)
)

var registry = map[string]Algorithm{
	SHA3_256.name:  SHA3_256,
	SHA3_512.name:  SHA3_512,
	Keccak256.name: Keccak256,
	SM3.name:       SM3,
}

// Lookup returns the registered algorithm with the given name.
func Lookup(name string) (Algorithm, error) {
	alg, ok := registry[strings.ToLower(name)]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown digest %q", name)
	}
	return alg, nil
}

// Name returns the algorithm identifier.
func (a Algorithm) Name() string { return a.name }

// Size returns the output width in bytes.
func (a Algorithm) Size() int { return a.size }

// IsZero reports whether a is the zero Algorithm.
func (a Algorithm) IsZero() bool { return a.newHash == nil }

// New returns a fresh Hasher.
func (a Algorithm) New() *Hasher {
	return &Hasher{h: a.newHash(), size: a.size}
}

// Sum hashes the concatenation of parts.
func (a Algorithm) Sum(parts ...[]byte) []byte {
	h := a.New()
	for _, p := range parts {
		h.Update(p)
	}
	return h.Finalize()
}

// RequireSize returns an ErrWidthMismatch error unless the algorithm produces
// exactly size bytes.
func (a Algorithm) RequireSize(size int, what string) error {
	if a.IsZero() {
		return cryptoerr.New(cryptoerr.ErrNoDigest, fmt.Sprintf("%s: no digest configured", what))
	}
	if a.size != size {
		return cryptoerr.New(cryptoerr.ErrWidthMismatch,
			fmt.Sprintf("%s: digest %s is %d bytes, need %d", what, a.name, a.size, size))
	}
	return nil
}

func (a Algorithm) String() string { return a.name }

// Hasher is an incremental hash. It is not safe for concurrent use.
type Hasher struct {
	h    hash.Hash
	size int
}

// Update absorbs data.
func (h *Hasher) Update(data []byte) {
	// hash.Hash.Write never returns an error.
	h.h.Write(data)
}

// Finalize returns the digest of everything absorbed so far.
func (h *Hasher) Finalize() []byte {
	return h.h.Sum(nil)
}

// FinalizeSplit returns the digest split into two equal halves.
func (h *Hasher) FinalizeSplit() (left, right []byte) {
	out := h.Finalize()
	half := len(out) / 2
	return out[:half:half], out[half:]
}

// Size returns the output width in bytes.
func (h *Hasher) Size() int { return h.size }
