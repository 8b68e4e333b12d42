package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
	"github.com/mahdiidarabi/asymcrypto/pkg/keypair"
)

// keyFile is the on-disk form of a keypair. The suite is recorded so that a
// key is never loaded into a client for another curve.
type keyFile struct {
	Suite   string          `json:"suite"`
	Keypair json.RawMessage `json:"keypair"`
}

func writeKeyFile(path, suite string, kp *keypair.Keypair) error {
	raw, err := json.Marshal(kp)
	if err != nil {
		return err
	}
	bz, err := json.MarshalIndent(keyFile{Suite: suite, Keypair: raw}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o600)
}

// readKeyFile loads a key file and checks it against the client's suite.
func readKeyFile(path string, client *asymcrypto.Client) (*keypair.Keypair, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	var kf keyFile
	if err := json.Unmarshal(bz, &kf); err != nil {
		return nil, fmt.Errorf("failed to parse key file %s: %w", path, err)
	}
	if kf.Suite != client.Suite().Name {
		return nil, fmt.Errorf("key file %s is for suite %s, not %s", path, kf.Suite, client.Suite().Name)
	}
	return client.UnmarshalKeypair(kf.Keypair)
}

func defaultKeyPath(home string) string {
	return filepath.Join(home, "key.json")
}
