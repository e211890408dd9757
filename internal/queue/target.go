package queue

import "fmt"

// TargetKind discriminates the Target variants.
type TargetKind string

const (
	TargetMovie       TargetKind = "movie"
	TargetSeries      TargetKind = "series"
	TargetSeason      TargetKind = "season"
	TargetEpisode     TargetKind = "episode"
	TargetMovieSlot   TargetKind = "movie-slot"
	TargetEpisodeSlot TargetKind = "episode-slot"
)

// Target identifies what progress is being asked for: a movie, a series, a
// season, an episode, or a quality slot of a movie/episode. Targets are
// value objects built through the constructors below; the zero Target
// matches nothing.
type Target struct {
	kind TargetKind

	movieID   int64
	seriesID  int64
	episodeID int64
	slotID    int64
	season    int

	// Broad matching for episode targets needs the series (and optionally
	// season) context. Absent context disables the broad branch, it is
	// never a wildcard.
	hasSeries bool
	hasSeason bool
}

// Movie targets all transfers for one movie.
func Movie(movieID int64) Target {
	return Target{kind: TargetMovie, movieID: movieID}
}

// Series targets whole-series transfers for one series.
func Series(seriesID int64) Target {
	return Target{kind: TargetSeries, seriesID: seriesID}
}

// Season targets one season of a series, satisfied by season packs and
// complete-series transfers.
func Season(seriesID int64, season int) Target {
	return Target{kind: TargetSeason, seriesID: seriesID, season: season, hasSeries: true, hasSeason: true}
}

// Episode targets one episode. seriesID and season are optional broad-match
// context: pass nil to disable the corresponding pack rules.
func Episode(episodeID int64, seriesID *int64, season *int) Target {
	t := Target{kind: TargetEpisode, episodeID: episodeID}
	if seriesID != nil {
		t.seriesID = *seriesID
		t.hasSeries = true
	}
	if season != nil {
		t.season = *season
		t.hasSeason = true
	}
	return t
}

// MovieSlot targets one quality slot of a movie.
func MovieSlot(movieID, slotID int64) Target {
	return Target{kind: TargetMovieSlot, movieID: movieID, slotID: slotID}
}

// EpisodeSlot targets one quality slot of an episode, with the same optional
// broad-match context as Episode.
func EpisodeSlot(episodeID, slotID int64, seriesID *int64, season *int) Target {
	t := Target{kind: TargetEpisodeSlot, episodeID: episodeID, slotID: slotID}
	if seriesID != nil {
		t.seriesID = *seriesID
		t.hasSeries = true
	}
	if season != nil {
		t.season = *season
		t.hasSeason = true
	}
	return t
}

// Kind returns the target variant. The zero Target has kind "".
func (t Target) Kind() TargetKind { return t.kind }

func (t Target) String() string {
	switch t.kind {
	case TargetMovie:
		return fmt.Sprintf("movie/%d", t.movieID)
	case TargetSeries:
		return fmt.Sprintf("series/%d", t.seriesID)
	case TargetSeason:
		return fmt.Sprintf("series/%d/season/%d", t.seriesID, t.season)
	case TargetEpisode:
		return fmt.Sprintf("episode/%d", t.episodeID)
	case TargetMovieSlot:
		return fmt.Sprintf("movie/%d/slot/%d", t.movieID, t.slotID)
	case TargetEpisodeSlot:
		return fmt.Sprintf("episode/%d/slot/%d", t.episodeID, t.slotID)
	default:
		return "invalid"
	}
}

// Matches reports whether the entry belongs to this target. Matching is
// inclusive: a season pack satisfies the season target and every episode
// target inside it at the same time, no target claims an entry exclusively.
// Terminal and unrecognized statuses never match.
func (t Target) Matches(e Entry) bool {
	if !e.Status.Active() {
		return false
	}

	switch t.kind {
	case TargetMovie:
		return e.MovieID != nil && *e.MovieID == t.movieID

	case TargetSeries:
		return e.SeriesID != nil && *e.SeriesID == t.seriesID && e.CompleteSeries

	case TargetSeason:
		if e.SeriesID == nil || *e.SeriesID != t.seriesID {
			return false
		}
		return e.CompleteSeries || (e.SeasonNumber != nil && *e.SeasonNumber == t.season && e.SeasonPack)

	case TargetEpisode:
		if e.EpisodeID != nil && *e.EpisodeID == t.episodeID {
			return true
		}
		return t.broadMatch(e)

	case TargetMovieSlot:
		return e.MovieID != nil && *e.MovieID == t.movieID &&
			e.SlotID != nil && *e.SlotID == t.slotID

	case TargetEpisodeSlot:
		if e.SlotID == nil || *e.SlotID != t.slotID {
			return false
		}
		if e.EpisodeID != nil && *e.EpisodeID == t.episodeID {
			return true
		}
		return t.broadMatch(e)

	default:
		return false
	}
}

// broadMatch lets one season-pack or whole-series transfer satisfy episode
// queries for any unit it contains. Requires series context on the target.
func (t Target) broadMatch(e Entry) bool {
	if !t.hasSeries || e.SeriesID == nil || *e.SeriesID != t.seriesID {
		return false
	}
	if e.CompleteSeries {
		return true
	}
	return t.hasSeason && e.SeasonNumber != nil && *e.SeasonNumber == t.season && e.SeasonPack
}

// Match filters a snapshot down to the entries belonging to the target,
// preserving snapshot order.
func (t Target) Match(entries []Entry) []Entry {
	var matched []Entry
	for _, e := range entries {
		if t.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
