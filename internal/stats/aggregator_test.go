package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func gigItem(owner, status string, end time.Time) map[string]interface{} {
	item := map[string]interface{}{
		"status": status,
	}
	if owner != "" {
		item["owner"] = map[string]interface{}{"id": owner}
	}
	if !end.IsZero() {
		item["end_date"] = end.Format(time.RFC3339)
	}
	return item
}

func postingItem(owner string, expires time.Time) map[string]interface{} {
	item := map[string]interface{}{}
	if owner != "" {
		item["owner"] = map[string]interface{}{"id": owner}
	}
	if !expires.IsZero() {
		item["expires_at"] = expires.Format(time.RFC3339)
	}
	return item
}

func TestProduceGigStatistics_CompletedOutsideWindow(t *testing.T) {
	t.Parallel()

	// a single gig completed two days ago: counted as completed, but not
	// within the last 24 hours
	snap := &Snapshot{Items: []map[string]interface{}{
		gigItem("u3", "completed", statNow.Add(-48*time.Hour)),
	}}

	stats := ProduceGigStatistics(snap, statNow)

	assert.Equal(t, 1, stats.TotalCompleted)
	assert.Equal(t, 0, stats.CompletedLast24h)
	assert.Equal(t, map[string]int{"u3": 1}, stats.GigsByUser)
}

func TestProduceGigStatistics_RecentCompletion(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{Items: []map[string]interface{}{
		gigItem("u1", "completed", statNow.Add(-2*time.Hour)),
		gigItem("u1", "completed", statNow.Add(-30*time.Hour)),
		gigItem("u2", "in_progress", time.Time{}),
		gigItem("u2", "pending", time.Time{}),
	}}

	stats := ProduceGigStatistics(snap, statNow)

	assert.Equal(t, 2, stats.TotalCompleted)
	assert.Equal(t, 1, stats.CompletedLast24h)
	assert.Equal(t, map[string]int{"u1": 2}, stats.GigsByUser)
}

func TestProduceGigStatistics_MissingOwnerStillCounted(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{Items: []map[string]interface{}{
		gigItem("", "completed", statNow.Add(-48*time.Hour)),
		gigItem("u1", "completed", statNow.Add(-48*time.Hour)),
	}}

	stats := ProduceGigStatistics(snap, statNow)

	assert.Equal(t, 2, stats.TotalCompleted)
	assert.Equal(t, map[string]int{"u1": 1}, stats.GigsByUser)
}

func TestProduceGigStatistics_EmptySnapshot(t *testing.T) {
	t.Parallel()

	stats := ProduceGigStatistics(&Snapshot{}, statNow)

	assert.Equal(t, 0, stats.TotalCompleted)
	assert.Equal(t, 0, stats.CompletedLast24h)
	assert.NotNil(t, stats.GigsByUser)
	assert.Empty(t, stats.GigsByUser)
}

func TestProducePostingStatistics_OpenVersusExpired(t *testing.T) {
	t.Parallel()

	// one posting expiring five days out, one expired a day ago
	snap := &Snapshot{Items: []map[string]interface{}{
		postingItem("u1", statNow.Add(5*24*time.Hour)),
		postingItem("u2", statNow.Add(-24*time.Hour)),
	}}

	stats := ProducePostingStatistics(snap, statNow)

	assert.Equal(t, 2, stats.TotalPostings)
	assert.Equal(t, 1, stats.OpenPostings)
	assert.Equal(t, 1, stats.ExpiredPostings)
	assert.Equal(t, map[string]int{"u1": 1, "u2": 1}, stats.PostingsByUser)
}

func TestProducePostingStatistics_NoExpiryCountsAsExpired(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{Items: []map[string]interface{}{
		postingItem("u1", time.Time{}),
	}}

	stats := ProducePostingStatistics(snap, statNow)

	assert.Equal(t, 1, stats.TotalPostings)
	assert.Equal(t, 0, stats.OpenPostings)
	assert.Equal(t, 1, stats.ExpiredPostings)
}

func TestProduceStatistics_Deterministic(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{Items: []map[string]interface{}{
		gigItem("u1", "completed", statNow.Add(-time.Hour)),
		gigItem("u2", "completed", statNow.Add(-72*time.Hour)),
	}}

	first := ProduceGigStatistics(snap, statNow)
	second := ProduceGigStatistics(snap, statNow)

	assert.Equal(t, first, second)
}

func TestCombine_MergesStructurally(t *testing.T) {
	t.Parallel()

	gigs := GigStatistics{TotalCompleted: 3, CompletedLast24h: 1, GigsByUser: map[string]int{"u1": 3}}
	postings := PostingStatistics{TotalPostings: 5, OpenPostings: 2, ExpiredPostings: 3, PostingsByUser: map[string]int{"u2": 5}}

	combined := Combine(gigs, postings)

	assert.Equal(t, gigs, combined.GigsStatistics)
	assert.Equal(t, postings, combined.PostingsStatistics)
}

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	snap, err := ParseSnapshot([]byte(`{"items": [{"status": "completed"}], "@controls": {"self": {"href": "/gigwork/api/gigs/"}}}`))

	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "completed", snap.Items[0]["status"])
}

func TestParseSnapshot_BadJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseSnapshot([]byte(`{"items": `))
	assert.Error(t, err)
}

func TestParseTimestamp_AcceptsNaiveISO(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"2026-08-01T12:00:00Z",
		"2026-08-01T12:00:00.123456Z",
		"2026-08-01T12:00:00",
		"2026-08-01T12:00:00.123456",
	} {
		parsed, ok := parseTimestamp(s)
		require.True(t, ok, "failed to parse %q", s)
		assert.Equal(t, 2026, parsed.Year())
	}

	_, ok := parseTimestamp(nil)
	assert.False(t, ok)
	_, ok = parseTimestamp("not a date")
	assert.False(t, ok)
}
