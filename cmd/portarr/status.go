package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server and feed status",
	Long: `Show the server status and the age of the latest queue snapshot.

Examples:
  portarr status
  portarr status --json`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	fmt.Printf("Server: %s\n", serverURL)
	fmt.Printf("Status: %s\n", status.Status)
	if status.SnapshotID != "" {
		fmt.Printf("Latest snapshot: %s (%s)\n", status.SnapshotID, status.SnapshotAt)
		fmt.Printf("Queue size: %d\n", status.QueueSize)
	}
	return nil
}
