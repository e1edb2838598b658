package cmd

import (
	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/ui"
)

var (
	importPublic bool

	importKeyCmd = &cobra.Command{
		Use:   "import-key <keyfile>",
		Short: "Import a key into the keystore",
		Long: `Copies an externally supplied key file into the keystore. Private
keys are written owner-only regardless of the source file's permissions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting import-key command")
			spinner, cleanup := startSpinner("Importing key...", verbose)
			defer cleanup()

			ks, err := openKeystore()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
			}

			destPath, err := ks.ImportKey(args[0], importPublic)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to import key: %w", err)
			}
			Logger.Infof("Imported %s to %s", args[0], destPath)

			spinner.FinalMSG = ui.Success.Sprint("✓") + " Imported key to " +
				ui.Path.Sprint(destPath)
			return nil
		},
	}
)

func init() {
	importKeyCmd.Flags().BoolVar(&importPublic, "public", false, "import as a public key")
}
