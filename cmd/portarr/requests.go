package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var validMediaTypes = []string{"movie", "series", "season", "episode"}

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List and manage media requests",
	Long: `List and manage media requests.

Examples:
  portarr requests                          # List all requests
  portarr requests --user 1                 # List one user's requests
  portarr requests --type movie             # Filter by media type
  portarr requests add --user 1 --type movie --title "Inception" --movie 42
  portarr requests add --user 1 --type season --title "Show" --series 7 --season 2
  portarr requests rm 3                     # Delete request #3`,
	RunE: runRequestsCmd,
}

var requestsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a media request",
	Args:  cobra.NoArgs,
	RunE:  runRequestsAdd,
}

var requestsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsRm,
}

func init() {
	rootCmd.AddCommand(requestsCmd)
	requestsCmd.Flags().Int64P("user", "u", 0, "Filter by user ID")
	requestsCmd.Flags().StringP("type", "t", "", "Filter by media type (movie, series, season, episode)")

	requestsAddCmd.Flags().Int64P("user", "u", 0, "User ID (required)")
	requestsAddCmd.Flags().StringP("type", "t", "", "Media type (required)")
	requestsAddCmd.Flags().String("title", "", "Media title")
	requestsAddCmd.Flags().Int64("movie", 0, "Movie ID")
	requestsAddCmd.Flags().Int64("series", 0, "Series ID")
	requestsAddCmd.Flags().Int64("episode", 0, "Episode ID")
	requestsAddCmd.Flags().Int("season", 0, "Season number")
	requestsAddCmd.Flags().Int64("tmdb", 0, "TMDB ID")
	requestsAddCmd.Flags().Int64("tvdb", 0, "TVDB ID")
	_ = requestsAddCmd.MarkFlagRequired("user")
	_ = requestsAddCmd.MarkFlagRequired("type")

	requestsCmd.AddCommand(requestsAddCmd)
	requestsCmd.AddCommand(requestsRmCmd)
}

func runRequestsCmd(cmd *cobra.Command, args []string) error {
	var userID *int64
	if cmd.Flags().Changed("user") {
		v, _ := cmd.Flags().GetInt64("user")
		userID = &v
	}
	mediaType, _ := cmd.Flags().GetString("type")
	if mediaType != "" && !validMediaType(mediaType) {
		return fmt.Errorf("invalid type %q, valid types: %s", mediaType, strings.Join(validMediaTypes, ", "))
	}

	client := NewClient(serverURL)
	requests, err := client.Requests(userID, mediaType)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(requests)
		return nil
	}

	printRequests(requests)
	return nil
}

func validMediaType(t string) bool {
	for _, v := range validMediaTypes {
		if strings.EqualFold(t, v) {
			return true
		}
	}
	return false
}

func printRequests(r *ListRequestsResponse) {
	if len(r.Items) == 0 {
		fmt.Println("No requests")
		return
	}

	fmt.Printf("Requests (%d):\n\n", r.Total)
	fmt.Printf("  %-4s %-6s %-8s %-36s %s\n", "ID", "USER", "TYPE", "TITLE", "MEDIA")
	fmt.Println("  " + strings.Repeat("-", 76))

	for i := range r.Items {
		req := &r.Items[i]
		fmt.Printf("  %-4d %-6d %-8s %-36s %s\n",
			req.ID, req.UserID, req.MediaType, truncate(req.Title, 36), describeMedia(req))
	}
}

func describeMedia(r *RequestResponse) string {
	switch r.MediaType {
	case "movie":
		if r.MovieID != nil {
			return fmt.Sprintf("movie %d", *r.MovieID)
		}
	case "series":
		if r.SeriesID != nil {
			return fmt.Sprintf("series %d", *r.SeriesID)
		}
	case "season":
		if r.SeriesID != nil && r.SeasonNumber != nil {
			return fmt.Sprintf("series %d season %d", *r.SeriesID, *r.SeasonNumber)
		}
	case "episode":
		if r.EpisodeID != nil {
			return fmt.Sprintf("episode %d", *r.EpisodeID)
		}
	}
	return "-"
}

func runRequestsAdd(cmd *cobra.Command, args []string) error {
	mediaType, _ := cmd.Flags().GetString("type")
	if !validMediaType(mediaType) {
		return fmt.Errorf("invalid type %q, valid types: %s", mediaType, strings.Join(validMediaTypes, ", "))
	}

	userID, _ := cmd.Flags().GetInt64("user")
	title, _ := cmd.Flags().GetString("title")

	body := map[string]any{
		"user_id":    userID,
		"media_type": strings.ToLower(mediaType),
		"title":      title,
	}
	addFlag := func(flag, field string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetInt64(flag)
			body[field] = v
		}
	}
	addFlag("movie", "movie_id")
	addFlag("series", "series_id")
	addFlag("episode", "episode_id")
	addFlag("tmdb", "tmdb_id")
	addFlag("tvdb", "tvdb_id")
	if cmd.Flags().Changed("season") {
		v, _ := cmd.Flags().GetInt("season")
		body["season_number"] = v
	}

	client := NewClient(serverURL)
	created, err := client.AddRequest(body)
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	if jsonOutput {
		printJSON(created)
		return nil
	}
	if !quietOutput {
		fmt.Printf("Request %d added (%s)\n", created.ID, describeMedia(created))
	}
	return nil
}

func runRequestsRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID: %s", args[0])
	}

	client := NewClient(serverURL)
	if err := client.DeleteRequest(id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if !quietOutput {
		fmt.Printf("Request %d deleted\n", id)
	}
	return nil
}
