package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func configCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Commands to manage the asymcrypto configuration",
	}
	cmd.AddCommand(configInitCmd(app), configShowCmd(app))
	return cmd
}

func configInitCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Write the effective configuration to <home>/config.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			if _, err := os.Stat(app.configFile); !os.IsNotExist(err) && !overwrite {
				return fmt.Errorf("%s already exists. Provide the -o flag to overwrite the existing config",
					app.configFile)
			}
			if err := app.config.Write(app.configFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.configFile)
			return nil
		},
	}
	cmd.Flags().BoolP("overwrite", "o", false, "Overwrite an existing config file")
	return cmd
}

func configShowCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := app.config
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "home: %s\n", app.homeDir)
			fmt.Fprintf(out, "suite: %s\nscheme: %s\nmax-attempts: %d\nworkers: %d\n",
				c.Suite, c.Scheme, c.MaxAttempts, c.Workers)
			fmt.Fprintf(out, "log: level=%s format=%s output=%s\n", c.Log.Level, c.Log.Format, c.Log.Output)
			return nil
		},
	}
}
