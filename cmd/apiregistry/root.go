package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apiregistry",
	Short: "apiregistry is a registry of API endpoint definitions",
	Long: `apiregistry stores API endpoint definitions (name, path, method and
description) in a relational database and exposes them over a JSON REST API.

Configuration is read from a YAML file, APIREGISTRY_* environment variables
and a .env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (default: search ./config.yaml, ./config/config.yaml, /etc/apiregistry/config.yaml)")

	rootCmd.AddCommand(serveCmd, configCmd, versionCmd)
}
