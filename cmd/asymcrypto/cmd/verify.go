package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/asymcrypto/pkg/group"
)

var errVerificationFailed = errors.New("signature verification failed")

func verifyCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a hex signature against a public key and message",
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
			flags := cmd.Flags()
			pubHex, _ := flags.GetString("public-key")
			sigHex, _ := flags.GetString("signature")

			client, err := app.client()
			if err != nil {
				return err
			}
			public, err := client.ParsePublicKeyHex(pubHex)
			if err != nil {
				return fmt.Errorf("failed to parse public key: %w", err)
			}
			sig, err := group.DecodeHex(sigHex)
			if err != nil {
				return fmt.Errorf("failed to parse signature: %w", err)
			}

			if !client.Verify(scheme, public, msg, sig) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errVerificationFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringP("public-key", "p", "", "Public key in hex")
	cmd.Flags().String("signature", "", "Signature in hex")
	cmd.Flags().StringP("scheme", "s", "", "Signature scheme: ecdsa, schnorr or sm2 (default from config)")
	addMessageFlags(cmd)
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
