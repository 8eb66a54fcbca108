package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is the release version reported by the banner.
const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "darkfluid",
	Short: "darkfluid is a mock game backend",
	Long: `A mock backend serving a game client static configuration data and
performing the session/account key-pairing handshake.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
