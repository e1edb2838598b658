package cmd

import (
	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/configs"
	"github.com/purrcrypt/purr/internal/dialect"
	"github.com/purrcrypt/purr/internal/ui"
)

var setDialectCmd = &cobra.Command{
	Use:   "set-dialect <cat|dog>",
	Short: "Set the preferred dialect",
	Long: `Persists the preferred dialect used by encrypt when no --dialect
override is given. The dialect only changes how ciphertext reads as text;
it has no effect on cryptographic strength.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set-dialect command")

		d, err := dialect.Parse(args[0])
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		ks, err := openKeystore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
		}

		if err := configs.SetDialect(ks.HomeDir, d); err != nil {
			return Logger.ErrorfAndReturn("failed to save dialect: %w", err)
		}
		Logger.Infof("Preferred dialect set to %s", d)

		switch d {
		case dialect.Dog:
			cmd.Println(ui.Success.Sprint("✓") + " Switching to dog mode!")
		default:
			cmd.Println(ui.Success.Sprint("✓") + " Switching to cat mode!")
		}
		return nil
	},
}
