package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/purrcrypt/purr/internal/ui"
)

var listKeysCmd = &cobra.Command{
	Use:     "list-keys",
	Aliases: []string{"listkeys"},
	Short:   "List known keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list-keys command")

		ks, err := openKeystore()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open keystore: %w", err)
		}

		publicKeys, privateKeys, err := ks.ListKeys()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to list keys: %w", err)
		}

		var sb strings.Builder
		sb.WriteString(ui.Info.Sprint("Public keys") + " in " + ui.Path.Sprint(ks.PublicDir()) + ":\n")
		if len(publicKeys) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, key := range publicKeys {
			sb.WriteString("  " + key + "\n")
		}

		sb.WriteString(ui.Info.Sprint("Private keys") + " in " + ui.Path.Sprint(ks.PrivateDir()) + ":\n")
		if len(privateKeys) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, key := range privateKeys {
			sb.WriteString("  " + key + "\n")
		}

		cmd.Print(sb.String())
		return nil
	},
}
