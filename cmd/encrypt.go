package cmd

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/configs"
	"github.com/purrcrypt/purr/internal/dialect"
	"github.com/purrcrypt/purr/internal/keys"
	"github.com/purrcrypt/purr/internal/purrcrypt"
	"github.com/purrcrypt/purr/internal/ui"
)

var (
	encryptRecipient string
	encryptOutput    string
	encryptDialect   string

	encryptCmd = &cobra.Command{
		Use:     "encrypt <file>",
		Aliases: []string{"e"},
		Short:   "Encrypt a file for a recipient",
		Long: `Encrypts a file for the recipient's public key and writes the result
as dialect text with a .purr extension. The recipient may be a key name
from the keystore or a path to a public key file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting encrypt command")
			spinner, cleanup := startSpinner("Encrypting file...", verbose)
			defer cleanup()

			inputPath := args[0]
			outputPath := encryptOutput
			if outputPath == "" {
				outputPath = inputPath + ".purr"
			}
			Logger.Debugf("Input: %s, Output: %s", inputPath, outputPath)

			ks, err := openKeystore()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
			}

			// Command-line dialect wins; otherwise fall back to config.
			var d dialect.Dialect
			if encryptDialect != "" {
				d, err = dialect.Parse(encryptDialect)
				if err != nil {
					return Logger.ErrorfAndReturn("%w", err)
				}
			} else {
				d = configs.Load(ks.HomeDir).Dialect()
			}
			Logger.Debugf("Using %s dialect", d)

			keyPath, err := ks.FindKey(encryptRecipient, true)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to resolve recipient key: %w", err)
			}
			Logger.Debugf("Recipient key path: %s", keyPath)

			recipientKey, err := keys.LoadPublicKey(keyPath)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load recipient key: %w", err)
			}

			if err := purrcrypt.EncryptFile(inputPath, outputPath, recipientKey, d, rand.Reader); err != nil {
				return Logger.ErrorfAndReturn("failed to encrypt %s: %w", inputPath, err)
			}
			Logger.Infof("Encrypted %s for %s in %s dialect", inputPath, encryptRecipient, d)

			spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted message saved to " +
				ui.Path.Sprint(outputPath)
			return nil
		},
	}
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptRecipient, "recipient", "r", "", "recipient's public key or name (required)")
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output file (default: adds .purr)")
	encryptCmd.Flags().StringVar(&encryptDialect, "dialect", "", "override dialect for this encryption (cat|dog)")
	_ = encryptCmd.MarkFlagRequired("recipient")
}
