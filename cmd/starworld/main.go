package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MayaTheShy/Starworld/config"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "starworld",
		Short: "Wire-protocol tooling for an Overte-style virtual world client",
		Long: `Starworld bundles the protocol utilities used against a local
virtual world client:

  • inject     send a demo entity scene over UDP, the way an entity server would
  • signature  compute the protocol compatibility checksum peers compare
  • decode     pretty-print a captured entity datagram`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")

	rootCmd.AddCommand(
		injectCmd(),
		signatureCmd(),
		decodeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return config.NewConfig(v), nil
}
