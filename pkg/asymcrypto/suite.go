package asymcrypto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/edwards25519"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/secp256k1"
	"github.com/mahdiidarabi/asymcrypto/pkg/group/sm2p256"
)

// Suite bundles a group with the digest used to derive keys from seeds and
// the digest used to hash messages.
type Suite struct {
	Name        string
	Group       group.Group
	SeedHash    digest.Algorithm
	MessageHash digest.Algorithm
}

var (
	// SM2 is the SM2 curve with SM3 message hashing.
	SM2 = Suite{
		Name:        "sm2",
		Group:       sm2p256.New(),
		SeedHash:    digest.SHA3_512,
		MessageHash: digest.SM3,
	}
	// Secp256k1 is the secp256k1 curve with SHA3-256 message hashing.
	Secp256k1 = Suite{
		Name:        "secp256k1",
		Group:       secp256k1.New(),
		SeedHash:    digest.SHA3_512,
		MessageHash: digest.SHA3_256,
	}
	// Ed25519 is the edwards25519 prime-order subgroup with SHA3-256 message
	// hashing.
	Ed25519 = Suite{
		Name:        "ed25519",
		Group:       edwards25519.New(),
		SeedHash:    digest.SHA3_512,
		MessageHash: digest.SHA3_256,
	}
)

var suites = map[string]Suite{
	SM2.Name:       SM2,
	Secp256k1.Name: Secp256k1,
	Ed25519.Name:   Ed25519,
}

// LookupSuite returns the built-in suite with the given name.
func LookupSuite(name string) (Suite, error) {
	s, ok := suites[strings.ToLower(name)]
	if !ok {
		return Suite{}, cryptoerr.New(cryptoerr.ErrUnknownSuite,
			fmt.Sprintf("unknown suite %q (available: %s)", name, strings.Join(SuiteNames(), ", ")))
	}
	return s, nil
}

// SuiteNames lists the built-in suites in sorted order.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scheme names a signature scheme.
type Scheme string

const (
	SchemeECDSA   Scheme = "ecdsa"
	SchemeSchnorr Scheme = "schnorr"
	SchemeSM2     Scheme = "sm2"
)

// Schemes lists every supported scheme.
func Schemes() []Scheme {
	return []Scheme{SchemeECDSA, SchemeSchnorr, SchemeSM2}
}

// ParseScheme validates a scheme name.
func ParseScheme(name string) (Scheme, error) {
	switch s := Scheme(strings.ToLower(name)); s {
	case SchemeECDSA, SchemeSchnorr, SchemeSM2:
		return s, nil
	}
	return "", cryptoerr.New(cryptoerr.ErrUnknownScheme, fmt.Sprintf("unknown scheme %q", name))
}
