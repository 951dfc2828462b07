package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "mcmwallet",
	Short: "Mochimo offline wallet",
	Long: `mcmwallet is an offline cryptographic core for the Mochimo
cryptocurrency: WOTS+ keypair derivation, account tags and transaction
signing from a single master seed.

It never touches the network. Use its output with a Mesh API
collaborator service to broadcast transactions and query balances.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mcmwallet.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().Uint64("fee", 500, "default transaction fee in nanoMCM")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("fee", rootCmd.PersistentFlags().Lookup("fee"))
	viper.SetDefault("account", 0)
	viper.SetDefault("mesh_api", "http://localhost:8080")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mcmwallet")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
