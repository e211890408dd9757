package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Aggregated progress for a media target",
	Long: `Show aggregated download progress for one media target.

The target is spelled through flags, mirroring the server API:

Examples:
  portarr progress --movie 42
  portarr progress --movie 42 --slot 3
  portarr progress --series 7
  portarr progress --series 7 --season 2
  portarr progress --episode 101 --series 7 --season 2`,
	Args: cobra.NoArgs,
	RunE: runProgressCmd,
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().Int64("movie", 0, "Movie ID")
	progressCmd.Flags().Int64("series", 0, "Series ID")
	progressCmd.Flags().Int64("episode", 0, "Episode ID")
	progressCmd.Flags().Int64("slot", 0, "Quality slot ID")
	progressCmd.Flags().Int("season", 0, "Season number")
}

func runProgressCmd(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	setFlag := func(flag, param string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetInt64(flag)
			params.Set(param, fmt.Sprintf("%d", v))
		}
	}
	setFlag("movie", "movie_id")
	setFlag("series", "series_id")
	setFlag("episode", "episode_id")
	setFlag("slot", "slot_id")
	if cmd.Flags().Changed("season") {
		v, _ := cmd.Flags().GetInt("season")
		params.Set("season", fmt.Sprintf("%d", v))
	}

	if len(params) == 0 {
		return fmt.Errorf("one of --movie, --series or --episode is required")
	}

	client := NewClient(serverURL)
	p, err := client.Progress(params)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(p)
		return nil
	}

	printProgress(p)
	return nil
}

func printProgress(p *ProgressResponse) {
	fmt.Printf("Target: %s\n\n", p.Target)

	if !p.IsDownloading {
		if p.JustCompleted {
			fmt.Println("Just completed")
		} else {
			fmt.Println("Not downloading")
		}
		return
	}

	state := "downloading"
	if p.IsPaused {
		state = "paused"
	}

	fmt.Printf("  %-10s %s\n", "State:", state)
	fmt.Printf("  %-10s %.1f%%\n", "Progress:", p.Percent)
	fmt.Printf("  %-10s %s\n", "Speed:", formatSpeed(p.Speed))
	fmt.Printf("  %-10s %s\n", "ETA:", formatETA(p.ETA))
	if p.ReleaseName != "" {
		fmt.Printf("  %-10s %s\n", "Release:", p.ReleaseName)
	}
}
