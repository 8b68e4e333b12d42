package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
)

func suitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suites",
		Short: "List the available cipher suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SUITE\tGROUP\tSEED HASH\tMESSAGE HASH")
			for _, name := range asymcrypto.SuiteNames() {
				s, err := asymcrypto.LookupSuite(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Group.Name(), s.SeedHash.Name(), s.MessageHash.Name())
			}
			return w.Flush()
		},
	}
}
