// Package signature holds what the ECDSA, Schnorr and SM2 engines share:
// construction options and the (r, s) scalar-pair signature encoding.
package signature

import (
	"fmt"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
	"github.com/mahdiidarabi/asymcrypto/pkg/digest"
	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/logging"
)

// DefaultMaxAttempts bounds the nonce rejection loops. A healthy random source
// needs one attempt; exhausting the budget means the source is broken.
const DefaultMaxAttempts = 64

// Options is the resolved engine configuration.
type Options struct {
	Digest      digest.Algorithm
	MaxAttempts int
	Logger      logging.Logger
}

// Option configures an engine.
type Option func(*Options)

// WithDigest sets the message digest.
func WithDigest(d digest.Algorithm) Option {
	return func(o *Options) { o.Digest = d }
}

// WithMaxAttempts caps the nonce rejection loop. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Resolve applies opts over the defaults and validates the digest width
// against g. A digest is optional unless required is set.
func Resolve(g group.Group, scheme string, required bool, opts ...Option) (Options, error) {
	o := Options{MaxAttempts: DefaultMaxAttempts, Logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Digest.IsZero() && !required {
		return o, nil
	}
	if err := o.Digest.RequireSize(g.ScalarSize(), scheme); err != nil {
		return Options{}, err
	}
	return o, nil
}

// CheckDigest returns ErrDigestSize unless d has the scalar width of g.
func CheckDigest(g group.Group, d []byte) error {
	if len(d) != g.ScalarSize() {
		return cryptoerr.New(cryptoerr.ErrDigestSize,
			fmt.Sprintf("digest must be %d bytes, got %d", g.ScalarSize(), len(d)))
	}
	return nil
}

// RetryLimit builds the error returned when a rejection loop gives up.
func RetryLimit(scheme string, attempts int) error {
	return cryptoerr.New(cryptoerr.ErrRetryLimit,
		fmt.Sprintf("%s: no valid nonce after %d attempts", scheme, attempts))
}

// NoDigest builds the error returned by message-level operations on an engine
// without a digest.
func NoDigest(scheme string) error {
	return cryptoerr.New(cryptoerr.ErrNoDigest, scheme+": engine has no message digest")
}
