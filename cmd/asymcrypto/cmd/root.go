// Package cmd implements the asymcrypto command line.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mahdiidarabi/asymcrypto/internal/config"
	"github.com/mahdiidarabi/asymcrypto/pkg/asymcrypto"
	"github.com/mahdiidarabi/asymcrypto/pkg/logging"
)

const envPrefix = "asymcrypto"

// appState is shared by the subcommands of one root command.
type appState struct {
	homeDir    string
	configFile string
	config     config.Config
	logger     logging.Logger
	v          *viper.Viper
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &appState{v: viper.New()}

	root := &cobra.Command{
		Use:   "asymcrypto",
		Short: "Derive keypairs and create or check ECDSA, Schnorr and SM2 signatures",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.homeDir, "home", "", "Directory for config and key files (default is $HOME/.asymcrypto)")
	flags.String("suite", "", "Cipher suite: sm2, secp256k1 or ed25519 (overrides config)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	_ = app.v.BindPFlag("suite", flags.Lookup("suite"))
	_ = app.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		keygenCmd(app),
		signCmd(app),
		verifyCmd(app),
		batchVerifyCmd(app),
		suitesCmd(),
		configCmd(app),
	)
	return root
}

// load resolves the home directory, loads the config file and applies
// ASYMCRYPTO_* environment variables and flags on top of it.
func (a *appState) load(cmd *cobra.Command) error {
	if a.homeDir == "" {
		userHome, err := homedir.Dir()
		if err != nil {
			return err
		}
		a.homeDir = filepath.Join(userHome, ".asymcrypto")
	} else {
		expanded, err := homedir.Expand(a.homeDir)
		if err != nil {
			return err
		}
		a.homeDir = expanded
	}
	a.configFile = filepath.Join(a.homeDir, config.FileName)

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	v := a.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("suite", cfg.Suite)
	v.SetDefault("scheme", cfg.Scheme)
	v.SetDefault("max-attempts", cfg.MaxAttempts)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("log.level", string(cfg.Log.Level))
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.output", cfg.Log.Output)

	cfg.Suite = v.GetString("suite")
	cfg.Scheme = v.GetString("scheme")
	cfg.MaxAttempts = v.GetInt("max-attempts")
	cfg.Workers = v.GetInt("workers")
	cfg.Log.Level = logging.Level(v.GetString("log.level"))
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.Output = v.GetString("log.output")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.config = cfg
	a.logger = logging.NewZap(cfg.Log).WithName("cli")
	cmd.SilenceUsage = true
	return nil
}

// client builds an asymcrypto client for the configured suite.
func (a *appState) client(opts ...asymcrypto.Option) (*asymcrypto.Client, error) {
	suite, err := asymcrypto.LookupSuite(a.config.Suite)
	if err != nil {
		return nil, err
	}
	opts = append([]asymcrypto.Option{
		asymcrypto.WithLogger(a.logger),
		asymcrypto.WithMaxAttempts(a.config.MaxAttempts),
		asymcrypto.WithWorkers(a.config.Workers),
	}, opts...)
	return asymcrypto.NewClient(suite, opts...)
}

// scheme resolves the --scheme flag, falling back to the configured scheme.
func (a *appState) scheme(cmd *cobra.Command) (asymcrypto.Scheme, error) {
	s, _ := cmd.Flags().GetString("scheme")
	if s == "" {
		s = a.config.Scheme
	}
	return asymcrypto.ParseScheme(s)
}
