package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/keys"
	"github.com/purrcrypt/purr/internal/purrcrypt"
	"github.com/purrcrypt/purr/internal/ui"
)

var (
	decryptKey    string
	decryptOutput string

	decryptCmd = &cobra.Command{
		Use:     "decrypt <file>",
		Aliases: []string{"d"},
		Short:   "Decrypt a .purr file with your key",
		Long: `Decrypts a .purr file using a named key from the keystore. Both key
halves must be present: the public half is bound into the envelope's key
derivation, so the name must resolve to a .pub and a .key file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting decrypt command")
			spinner, cleanup := startSpinner("Decrypting file...", verbose)
			defer cleanup()

			inputPath := args[0]
			outputPath := decryptOutput
			if outputPath == "" {
				if trimmed := strings.TrimSuffix(inputPath, ".purr"); trimmed != inputPath {
					outputPath = trimmed
				} else {
					outputPath = inputPath + ".decrypted"
				}
			}
			Logger.Debugf("Input: %s, Output: %s", inputPath, outputPath)

			ks, err := openKeystore()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
			}

			publicPath, privatePath := ks.KeyPaths(decryptKey)
			if _, err := os.Stat(publicPath); err != nil {
				return Logger.ErrorfAndReturn("public key not found at %s", publicPath)
			}
			if _, err := os.Stat(privatePath); err != nil {
				return Logger.ErrorfAndReturn("private key not found at %s", privatePath)
			}
			Logger.Debugf("Using keypair %s (%s, %s)", decryptKey, publicPath, privatePath)

			keypair, err := keys.LoadKeyPair(publicPath, privatePath)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load keypair: %w", err)
			}

			if err := purrcrypt.DecryptFile(inputPath, outputPath, keypair); err != nil {
				return Logger.ErrorfAndReturn("failed to decrypt %s: %w", inputPath, err)
			}
			Logger.Infof("Decrypted %s", inputPath)

			spinner.FinalMSG = ui.Success.Sprint("✓") + " Decrypted message saved to " +
				ui.Path.Sprint(outputPath)
			return nil
		},
	}
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "your key name (required)")
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output file (default: strips .purr)")
	_ = decryptCmd.MarkFlagRequired("key")
}
