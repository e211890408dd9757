package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL   string
	jsonOutput  bool
	quietOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "portarr",
	Short: "CLI client for the portarr download portal",
	Long: `portarr - CLI client for the portarr download portal

Query per-user download views, media progress, and manage requests
against a running portarrd server.

Run 'portarrd' to start the server daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8686", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quietOutput, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("portarr {{.Version}}\n")
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
