// Package main is the entry point for the contractgen CLI: listing and
// linting contract templates, validating and rendering fill-ins, interactive
// filling, and seeding a local template database.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the contractgen CLI.
var rootCmd = &cobra.Command{
	Use:   "contractgen",
	Short: "Contract template rendering and validation for musicians",
	Long: `contractgen renders music-industry contracts from declarative templates:
field and clause declarations plus section content with {{placeholder}}
tokens. Built-in archetypes cover collaboration, licensing, touring, sample
clearance, and work-for-hire agreements; additional templates load from YAML
or JSON files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./contractgen.yaml or ~/.config/contractgen/config.yaml)")
	rootCmd.PersistentFlags().String("templates", "", "directory of additional template definitions (YAML/JSON)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("contractgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "contractgen"))
		}
	}

	viper.SetEnvPrefix("CONTRACTGEN")
	viper.AutomaticEnv()

	_ = viper.BindPFlag("templates", rootCmd.PersistentFlags().Lookup("templates"))
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
