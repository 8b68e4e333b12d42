package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
)

func batchVerifyCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-verify [file]",
		Short: "Verify every item of a JSON or CSV batch file",
		Long: "Verify every item of a batch file. JSON files hold an array of\n" +
			"{scheme, public_key, message, signature} objects; CSV files carry the\n" +
			"same names in their header row. Items without a scheme use --scheme.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := app.scheme(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			format, _ := flags.GetString("format")
			workers, _ := flags.GetInt("workers")
			if !flags.Changed("workers") {
				workers = app.config.Workers
			}

			var parser asymcrypto.ItemParser
			switch format {
			case "json":
				parser = &asymcrypto.JSONParser{DefaultScheme: scheme}
			case "csv":
				parser = &asymcrypto.CSVParser{DefaultScheme: scheme}
			case "":
				parser = asymcrypto.ParserForFile(args[0], scheme)
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			client, err := app.client(asymcrypto.WithParser(parser), asymcrypto.WithWorkers(workers))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			report, err := client.VerifyFile(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				switch {
				case res.Err != nil:
					fmt.Fprintf(out, "%d\terror\t%v\n", res.Index, res.Err)
				case res.Valid:
					fmt.Fprintf(out, "%d\tvalid\n", res.Index)
				default:
					fmt.Fprintf(out, "%d\tinvalid\n", res.Index)
				}
			}
			fmt.Fprintf(out, "%d valid, %d invalid\n", report.Valid, report.Invalid)

			if !report.AllValid() {
				return errVerificationFailed
			}
			return nil
		},
	}
	cmd.Flags().StringP("scheme", "s", "", "Scheme for items that do not name one (default from config)")
	cmd.Flags().StringP("format", "f", "", "Batch file format: json or csv (default from the file extension)")
	cmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (0 = one per CPU)")
	return cmd
}
