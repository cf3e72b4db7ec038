// Package stats reduces gig and posting list snapshots to the combined
// statistics document served by the stat service.
package stats

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is a raw collection response: {"items": [...]}.
type Snapshot struct {
	Items []map[string]interface{} `json:"items"`
}

// ParseSnapshot decodes a collection document.
func ParseSnapshot(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

type GigStatistics struct {
	TotalCompleted   int            `json:"total_completed"`
	CompletedLast24h int            `json:"completed_last_24h"`
	GigsByUser       map[string]int `json:"gigs_by_user"`
}

type PostingStatistics struct {
	TotalPostings   int            `json:"total_postings"`
	OpenPostings    int            `json:"open_postings"`
	ExpiredPostings int            `json:"expired_postings"`
	PostingsByUser  map[string]int `json:"postings_by_user"`
}

type CombinedStatistics struct {
	GigsStatistics     GigStatistics     `json:"gigs_statistics"`
	PostingsStatistics PostingStatistics `json:"postings_statistics"`
}

// ProduceGigStatistics reduces a gigs snapshot. Pure: repeated calls with
// the same snapshot and now yield identical output. Items without an
// owner id still count toward total_completed but are excluded from
// gigs_by_user.
func ProduceGigStatistics(snap *Snapshot, now time.Time) GigStatistics {
	stats := GigStatistics{
		GigsByUser: make(map[string]int),
	}

	for _, gig := range snap.Items {
		if gig["status"] != "completed" {
			continue
		}
		stats.TotalCompleted++

		if owner := ownerKey(gig["owner"]); owner != "" {
			stats.GigsByUser[owner]++
		}

		if end, ok := parseTimestamp(gig["end_date"]); ok && now.Sub(end) <= 24*time.Hour {
			stats.CompletedLast24h++
		}
	}

	return stats
}

// ProducePostingStatistics reduces a postings snapshot. A posting is open
// when its expires_at lies strictly in the future; postings without an
// expiry count as expired. postings_by_user counts every posting
// regardless of status.
func ProducePostingStatistics(snap *Snapshot, now time.Time) PostingStatistics {
	stats := PostingStatistics{
		PostingsByUser: make(map[string]int),
	}

	for _, posting := range snap.Items {
		stats.TotalPostings++

		if owner := ownerKey(posting["owner"]); owner != "" {
			stats.PostingsByUser[owner]++
		}

		if expires, ok := parseTimestamp(posting["expires_at"]); ok && expires.After(now) {
			stats.OpenPostings++
		} else {
			stats.ExpiredPostings++
		}
	}

	return stats
}

// Combine merges the two documents structurally; nothing is recomputed.
func Combine(gigs GigStatistics, postings PostingStatistics) CombinedStatistics {
	return CombinedStatistics{
		GigsStatistics:     gigs,
		PostingsStatistics: postings,
	}
}

// ownerKey extracts a map key from a nested owner representation. Both
// string ids and numeric ids (older snapshots) are accepted.
func ownerKey(v interface{}) string {
	owner, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}

	switch id := owner["id"].(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// timestampFormats covers RFC3339 and the naive ISO-8601 forms older
// producers emit.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
