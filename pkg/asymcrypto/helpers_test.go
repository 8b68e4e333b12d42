package asymcrypto

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type fixtureItem struct {
	Scheme    string `json:"scheme,omitempty"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// signedFixtures signs one message per scheme with a fresh keypair.
func signedFixtures(t *testing.T, client *Client) []fixtureItem {
	t.Helper()
	kp, err := client.GenerateKeypair()
	if err != nil {
		t.Fatalf("Failed to generate keypair: %v", err)
	}

	var out []fixtureItem
	for _, scheme := range Schemes() {
		msg := "message for " + string(scheme)
		sig, err := client.Sign(scheme, kp, []byte(msg))
		if err != nil {
			t.Fatalf("Failed to sign with %s: %v", scheme, err)
		}
		out = append(out, fixtureItem{
			Scheme:    string(scheme),
			PublicKey: hex.EncodeToString(kp.Public().Bytes()),
			Message:   msg,
			Signature: hex.EncodeToString(sig),
		})
	}
	return out
}

// writeFixture writes data under a temporary directory and returns the path.
func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func writeJSONFixture(t *testing.T, items []fixtureItem) string {
	t.Helper()
	data, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	return writeFixture(t, "batch.json", data)
}
