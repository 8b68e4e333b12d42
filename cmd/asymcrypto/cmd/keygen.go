package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/asymcrypto/pkg/group"
	"github.com/mahdiidarabi/asymcrypto/pkg/keypair"
)

func keygenCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair, or derive one from a seed",
		Long: "Generate a keypair from a random seed, or derive it deterministically\n" +
			"from --seed (hex, scalar width). The key file is written to --out\n" +
			"(default <home>/key.json) and the public key is printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			seedHex, _ := flags.GetString("seed")
			out, _ := flags.GetString("out")
			overwrite, _ := flags.GetBool("overwrite")
			if out == "" {
				out = defaultKeyPath(app.homeDir)
			}

			if _, err := os.Stat(out); err == nil && !overwrite {
				return fmt.Errorf("%s already exists. Provide the --overwrite flag to replace it", out)
			}

			client, err := app.client()
			if err != nil {
				return err
			}

			var kp *keypair.Keypair
			if seedHex != "" {
				seed, err := group.DecodeHex(seedHex)
				if err != nil {
					return fmt.Errorf("failed to parse seed: %w", err)
				}
				kp, err = client.KeypairFromSeed(seed)
				if err != nil {
					return err
				}
			} else {
				kp, err = client.GenerateKeypair()
				if err != nil {
					return err
				}
			}

			if err := writeKeyFile(out, app.config.Suite, kp); err != nil {
				return err
			}
			app.logger.Info("wrote key file", "path", out, "suite", app.config.Suite)
			fmt.Fprintln(cmd.OutOrStdout(), group.PointHex(kp.Public()))
			return nil
		},
	}
	cmd.Flags().String("seed", "", "Hex seed to derive the keypair from")
	cmd.Flags().StringP("out", "o", "", "Key file path")
	cmd.Flags().Bool("overwrite", false, "Replace an existing key file")
	return cmd
}
