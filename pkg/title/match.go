package title

import "github.com/hbollon/go-edlib"

// Confidence grades how certain a title match is.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the outcome of comparing a release name against a title.
type Match struct {
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence Confidence
}

// MatchRelease scores a release name against a media title. Jaro-Winkler
// favors shared prefixes, which suits release names since the title always
// leads the metadata tail.
func MatchRelease(releaseName, mediaTitle string) Match {
	cleaned := NormalizeRelease(releaseName)
	candidate := Normalize(mediaTitle)
	if cleaned == "" || candidate == "" {
		return Match{}
	}

	score := float64(edlib.JaroWinklerSimilarity(cleaned, candidate))

	m := Match{Score: score}
	switch {
	case score >= 0.95:
		m.Confidence = ConfidenceHigh
	case score >= 0.85:
		m.Confidence = ConfidenceMedium
	case score >= 0.70:
		m.Confidence = ConfidenceLow
	}
	return m
}
