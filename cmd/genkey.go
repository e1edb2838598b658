package cmd

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/configs"
	"github.com/purrcrypt/purr/internal/ui"
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey [name]",
	Short: "Generate a new keypair",
	Long: `Generates a fresh X25519 keypair and stores both halves in the
keystore. The private key is written owner-only.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting genkey command")
		spinner, cleanup := startSpinner("Generating keypair...", verbose)
		defer cleanup()

		name := "default"
		if len(args) > 0 {
			name = args[0]
		}
		Logger.Debugf("Key name: %s", name)

		ks, err := openKeystore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
		}

		if _, err := configs.Ensure(ks.HomeDir); err != nil {
			Logger.Warnf("Failed to initialize config: %v", err)
		}

		publicPath, privatePath, err := ks.Generate(name, rand.Reader)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate keypair: %w", err)
		}
		Logger.Infof("Generated keypair %s", name)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Generated keys:\n" +
			"  Public key:  " + ui.Path.Sprint(publicPath) + "\n" +
			"  Private key: " + ui.Path.Sprint(privatePath)
		return nil
	},
}
