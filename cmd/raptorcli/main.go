// Command raptorcli runs RAPTOR searches and the transfer-generation
// preprocessor against a GTFS feed directory.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/spf13/cobra"
)

var build = "develop"

var cfg config

var rootCmd = &cobra.Command{
	Use:          "raptorcli",
	Short:        "RAPTOR transit routing CLI",
	Long:         "Runs earliest-arrival transit searches and the transfer preprocessor over a GTFS feed.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(genTransfersCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	cfg.Version.SVN = build
	cfg.Version.Desc = "RAPTOR transit routing CLI"

	// Only defaults and RAPTOR_CLI_* environment variables are applied
	// here (no os.Args): cobra owns every command-line flag documented
	// for route/gen-transfers/serve, including --feed and --dsn, which
	// are registered per-subcommand with cfg's values as their default.
	if err := conf.Parse(nil, envPrefix, &cfg); err != nil {
		log.Fatalf("parsing config: %v", err)
	}

	bindRouteFlags()
	bindGenTransfersFlags()
	bindServeFlags()

	rootCmd.Version = build
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
