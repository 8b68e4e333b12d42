package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a key file and print the hex signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scheme, err := app.scheme(cmd)
			if err != nil {
				return err
			}
			msg, err := readMessage(cmd)
			if err != nil {
				return err
			}
			keyPath, _ := cmd.Flags().GetString("key")
			if keyPath == "" {
				keyPath = defaultKeyPath(app.homeDir)
			}

			client, err := app.client()
			if err != nil {
				return err
			}
			kp, err := readKeyFile(keyPath, client)
			if err != nil {
				return err
			}

			sig, err := client.Sign(scheme, kp, msg)
			if err != nil {
				return err
			}
			app.logger.Debug("signed message", "scheme", scheme, "bytes", len(msg))
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().StringP("key", "k", "", "Key file (default <home>/key.json)")
	cmd.Flags().StringP("scheme", "s", "", "Signature scheme: ecdsa, schnorr or sm2 (default from config)")
	addMessageFlags(cmd)
	return cmd
}
