// Package cryptoerr defines the error kinds shared by the keypair and
// signature engines.
//
// Every error returned by the engines either is an ErrorKind or wraps one, so
// callers can match failures with errors.Is:
//
//	if errors.Is(err, cryptoerr.ErrSM2Signature) {
//	    // restart signing with a fresh nonce
//	}
package cryptoerr

// These constants are used to identify a specific Error.
const (
	// ErrKeyPairGen is returned when a seed hashes to the zero scalar and
	// therefore cannot be used as a private key.
	ErrKeyPairGen = ErrorKind("ErrKeyPairGen")

	// ErrInvalidKeypair is returned when a serialized keypair is malformed or
	// its fields do not match the values derived from its seed.
	ErrInvalidKeypair = ErrorKind("ErrInvalidKeypair")

	// ErrSM2Signature is returned when SM2 signing produces s == 0.
	ErrSM2Signature = ErrorKind("ErrSM2Signature")

	// ErrWidthMismatch is returned when an engine is assembled from a digest
	// and a group whose widths are incompatible.
	ErrWidthMismatch = ErrorKind("ErrWidthMismatch")

	// ErrSeedSize is returned when a seed does not have the group's native
	// width.
	ErrSeedSize = ErrorKind("ErrSeedSize")

	// ErrDigestSize is returned when a digest passed to a signing function does
	// not have the scalar width.
	ErrDigestSize = ErrorKind("ErrDigestSize")

	// ErrRetryLimit is returned when a rejection-sampling loop exhausts its
	// attempt budget, which indicates a broken random source.
	ErrRetryLimit = ErrorKind("ErrRetryLimit")

	// ErrInvalidScalar is returned when bytes cannot be decoded as a scalar.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint is returned when bytes cannot be decoded as a point.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidSignature is returned when bytes cannot be decoded as a
	// signature.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrNoDigest is returned when a message-level operation is requested
	// from an engine that was built without a digest.
	ErrNoDigest = ErrorKind("ErrNoDigest")

	// ErrUnknownScheme is returned for an unrecognized signature scheme name.
	ErrUnknownScheme = ErrorKind("ErrUnknownScheme")

	// ErrUnknownSuite is returned for an unrecognized suite name.
	ErrUnknownSuite = ErrorKind("ErrUnknownSuite")
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key generation or signing.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a set of arguments.
func New(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
