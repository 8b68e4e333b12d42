package cryptoerr

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrKeyPairGen, "ErrKeyPairGen"},
		{ErrInvalidKeypair, "ErrInvalidKeypair"},
		{ErrSM2Signature, "ErrSM2Signature"},
		{ErrWidthMismatch, "ErrWidthMismatch"},
		{ErrSeedSize, "ErrSeedSize"},
		{ErrDigestSize, "ErrDigestSize"},
		{ErrRetryLimit, "ErrRetryLimit"},
		{ErrInvalidScalar, "ErrInvalidScalar"},
		{ErrInvalidPoint, "ErrInvalidPoint"},
		{ErrInvalidSignature, "ErrInvalidSignature"},
		{ErrNoDigest, "ErrNoDigest"},
		{ErrUnknownScheme, "ErrUnknownScheme"},
		{ErrUnknownSuite, "ErrUnknownSuite"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrKeyPairGen == ErrKeyPairGen",
		err:       ErrKeyPairGen,
		target:    ErrKeyPairGen,
		wantMatch: true,
		wantAs:    ErrKeyPairGen,
	}, {
		name:      "Error.ErrKeyPairGen == ErrKeyPairGen",
		err:       New(ErrKeyPairGen, ""),
		target:    ErrKeyPairGen,
		wantMatch: true,
		wantAs:    ErrKeyPairGen,
	}, {
		name:      "Error.ErrSM2Signature == Error.ErrSM2Signature",
		err:       New(ErrSM2Signature, ""),
		target:    New(ErrSM2Signature, ""),
		wantMatch: true,
		wantAs:    ErrSM2Signature,
	}, {
		name:      "wrapped Error.ErrRetryLimit == ErrRetryLimit",
		err:       fmt.Errorf("sign: %w", New(ErrRetryLimit, "gave up")),
		target:    ErrRetryLimit,
		wantMatch: true,
		wantAs:    ErrRetryLimit,
	}, {
		name:      "ErrDigestSize != ErrSeedSize",
		err:       ErrDigestSize,
		target:    ErrSeedSize,
		wantMatch: false,
		wantAs:    ErrDigestSize,
	}, {
		name:      "Error.ErrDigestSize != Error.ErrSeedSize",
		err:       New(ErrDigestSize, ""),
		target:    New(ErrSeedSize, ""),
		wantMatch: false,
		wantAs:    ErrDigestSize,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
