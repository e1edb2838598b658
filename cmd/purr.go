package cmd

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/keystore"
	logger "github.com/purrcrypt/purr/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "purr",
		Short: "purr - a cat/dog-themed file encryption tool",
		Long: `purr encrypts files with public-key cryptography and renders the
ciphertext as cat or dog dialect text, so encrypted messages read like
"meow purr mrrp nya" instead of binary noise.

Run 'purr help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing purr with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewFigure("purr", "", true).Print()
			cmd.Println("Run 'purr --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	RootCmd.AddCommand(genkeyCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(importKeyCmd)
	RootCmd.AddCommand(listKeysCmd)
	RootCmd.AddCommand(setDialectCmd)
}

// openKeystore creates the keystore and reports permission warnings.
// Loose permissions never abort the command.
func openKeystore() (*keystore.Keystore, error) {
	ks, err := keystore.New()
	if err != nil {
		return nil, err
	}
	warnings, err := ks.VerifyPermissions()
	if err != nil {
		Logger.Debugf("Skipping permission check: %v", err)
		return ks, nil
	}
	for _, warning := range warnings {
		Logger.WarnfAlways("%s", warning)
	}
	return ks, nil
}
