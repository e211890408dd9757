package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Show a user's active downloads",
	Long: `Show the downloads attributable to a user's requests.

The listing order stays stable across polls: finished entries drop out
without reshuffling the rest, new entries append at the end.

Examples:
  portarr downloads --user 1
  portarr downloads --user 1 --json`,
	Args: cobra.NoArgs,
	RunE: runDownloadsCmd,
}

func init() {
	rootCmd.AddCommand(downloadsCmd)
	downloadsCmd.Flags().Int64P("user", "u", 0, "User ID (required)")
	_ = downloadsCmd.MarkFlagRequired("user")
}

func runDownloadsCmd(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt64("user")

	client := NewClient(serverURL)
	downloads, err := client.Downloads(userID)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(downloads)
		return nil
	}

	printDownloads(downloads)
	return nil
}

func printDownloads(d *ListDownloadsResponse) {
	if len(d.Items) == 0 {
		fmt.Println("No active downloads")
		return
	}

	fmt.Printf("Active Downloads (%d):\n\n", d.Total)
	fmt.Printf("  %-5s %-12s %-42s %-8s %-10s %s\n", "REQ", "STATE", "RELEASE", "PROGRESS", "SPEED", "ETA")
	fmt.Println("  " + strings.Repeat("-", 90))

	for i := range d.Items {
		dl := &d.Items[i]
		title := dl.Entry.ReleaseName
		if title == "" {
			title = dl.Entry.Title
		}
		progress := "-"
		if dl.Entry.Size > 0 {
			progress = fmt.Sprintf("%.1f%%", float64(dl.Entry.Downloaded)/float64(dl.Entry.Size)*100)
		}
		speed := "-"
		if dl.Entry.Speed > 0 {
			speed = formatSpeed(dl.Entry.Speed)
		}
		fmt.Printf("  %-5d %-12s %-42s %-8s %-10s %s\n",
			dl.RequestID, dl.Entry.Status, truncate(title, 42), progress, speed, formatETA(dl.Entry.ETA))
	}
}
