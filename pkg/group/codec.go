package group

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mahdiidarabi/asymcrypto/pkg/cryptoerr"
)

// ScalarHex returns the hex encoding of s.
func ScalarHex(s Scalar) string {
	return hex.EncodeToString(s.Bytes())
}

// PointHex returns the hex encoding of p.
func PointHex(p Point) string {
	return hex.EncodeToString(p.Bytes())
}

// ScalarFromHex decodes a hex-encoded scalar. An optional 0x prefix is
// accepted.
func ScalarFromHex(g Group, s string) (Scalar, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidScalar, Description: err.Error()}
	}
	return g.ScalarFromBytes(b)
}

// PointFromHex decodes a hex-encoded point. An optional 0x prefix is accepted.
func PointFromHex(g Group, s string) (Point, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, cryptoerr.Error{Err: cryptoerr.ErrInvalidPoint, Description: err.Error()}
	}
	return g.PointFromBytes(b)
}

// DecodeHex decodes a hex string, handling a 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// CheckScalarSize returns an ErrInvalidScalar error unless len(b) == size.
func CheckScalarSize(name string, b []byte, size int) error {
	if len(b) != size {
		return cryptoerr.New(cryptoerr.ErrInvalidScalar,
			fmt.Sprintf("%s: scalar must be %d bytes, got %d", name, size, len(b)))
	}
	return nil
}

// CheckPointSize returns an ErrInvalidPoint error unless len(b) == size.
func CheckPointSize(name string, b []byte, size int) error {
	if len(b) != size {
		return cryptoerr.New(cryptoerr.ErrInvalidPoint,
			fmt.Sprintf("%s: point must be %d bytes, got %d", name, size, len(b)))
	}
	return nil
}

// ReverseBytes returns a reversed copy of b. Used to move between big- and
// little-endian scalar encodings.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}
