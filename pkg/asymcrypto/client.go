package asymcrypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/keypair"
	"github.com/mahdiidarabi/asymcrypto/pkg/logging"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature/ecdsa"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature/schnorr"
	"github.com/mahdiidarabi/asymcrypto/pkg/signature/sm2"
)

// Client provides a high-level API over one suite: key generation, signing
// and verification with every scheme, and batch verification.
type Client struct {
	suite   Suite
	keys    *keypair.Engine
	ecdsa   *ecdsa.Signer
	schnorr *schnorr.Signer
	sm2     *sm2.Signer

	rand        io.Reader
	logger      logging.Logger
	parser      ItemParser
	workers     int
	maxAttempts int
}

// Option configures a Client.
type Option func(*Client)

// WithRand sets the random source used for seeds and nonces. It must be safe
// for concurrent use if the client is shared.
func WithRand(r io.Reader) Option {
	return func(c *Client) { c.rand = r }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithParser sets the parser used by VerifyFile.
func WithParser(p ItemParser) Option {
	return func(c *Client) { c.parser = p }
}

// WithWorkers sets the default batch verification concurrency. Zero means one
// worker per CPU.
func WithWorkers(n int) Option {
	return func(c *Client) { c.workers = n }
}

// WithMaxAttempts caps the nonce rejection loops of the ECDSA and SM2 engines.
func WithMaxAttempts(n int) Option {
	return func(c *Client) { c.maxAttempts = n }
}

// NewClient assembles the keypair engine and the three signature engines for
// suite.
func NewClient(suite Suite, opts ...Option) (*Client, error) {
	c := &Client{
		suite:       suite,
		rand:        rand.Reader,
		logger:      logging.Nop(),
		parser:      &JSONParser{},
		maxAttempts: signature.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithName("asymcrypto").WithKV("suite", suite.Name)

	g := suite.Group
	engineOpts := []signature.Option{
		signature.WithMaxAttempts(c.maxAttempts),
		signature.WithLogger(c.logger),
	}

	var err error
	if c.keys, err = keypair.NewEngine(g, suite.SeedHash); err != nil {
		return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
	}
	if c.ecdsa, err = ecdsa.New(g, append(engineOpts, signature.WithDigest(suite.MessageHash))...); err != nil {
		return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
	}
	if c.schnorr, err = schnorr.New(g, suite.MessageHash, engineOpts...); err != nil {
		return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
	}
	if c.sm2, err = sm2.New(g, suite.MessageHash, engineOpts...); err != nil {
		return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
	}
	return c, nil
}

// Suite returns the client's suite.
func (c *Client) Suite() Suite { return c.suite }

// GenerateKeypair derives a keypair from a fresh random seed.
func (c *Client) GenerateKeypair() (*keypair.Keypair, error) {
	kp, err := c.keys.Generate(c.rand)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("generated keypair", "public_key", group.PointHex(kp.Public()))
	return kp, nil
}

// KeypairFromSeed derives the keypair for seed.
func (c *Client) KeypairFromSeed(seed []byte) (*keypair.Keypair, error) {
	return c.keys.FromSeed(seed)
}

// UnmarshalKeypair decodes and checks a JSON-encoded keypair.
func (c *Client) UnmarshalKeypair(data []byte) (*keypair.Keypair, error) {
	return c.keys.UnmarshalKeypair(data)
}

// ParsePublicKey decodes an encoded public point.
func (c *Client) ParsePublicKey(b []byte) (group.Point, error) {
	return c.suite.Group.PointFromBytes(b)
}

// ParsePublicKeyHex decodes a hex-encoded public point.
func (c *Client) ParsePublicKeyHex(s string) (group.Point, error) {
	return group.PointFromHex(c.suite.Group, s)
}

// Sign hashes message with the suite's message digest and signs it with
// scheme. The encoded signature is returned.
func (c *Client) Sign(scheme Scheme, kp *keypair.Keypair, message []byte) ([]byte, error) {
	if kp == nil {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidKeypair, "nil keypair")
	}
	switch scheme {
	case SchemeECDSA:
		sig, err := c.ecdsa.SignMessage(message, kp.Secret(), c.rand)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case SchemeSchnorr:
		sig, err := c.schnorr.SignMessage(message, kp)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	case SchemeSM2:
		sig, err := c.sm2.SignMessage(message, kp.Secret(), c.rand)
		if err != nil {
			return nil, err
		}
		return sig.Bytes(), nil
	}
	return nil, cryptoerr.New(cryptoerr.ErrUnknownScheme, fmt.Sprintf("unknown scheme %q", scheme))
}

// Verify reports whether sig is a valid scheme signature of message under
// public. Unknown schemes and malformed signatures yield false.
func (c *Client) Verify(scheme Scheme, public group.Point, message, sig []byte) bool {
	switch scheme {
	case SchemeECDSA:
		return c.ecdsa.VerifyBytes(c.suite.MessageHash.Sum(message), public, sig)
	case SchemeSchnorr:
		return c.schnorr.VerifyBytes(c.suite.MessageHash.Sum(message), public, sig)
	case SchemeSM2:
		return c.sm2.VerifyBytes(message, public, sig)
	}
	return false
}

// VerifyFile parses a batch file with the client's parser and verifies every
// item in it.
func (c *Client) VerifyFile(ctx context.Context, source string) (*BatchReport, error) {
	items, err := c.parser.ParseItems(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return c.BatchVerify(ctx, items, c.workers)
}

func (c *Client) workerCount(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return n
}
