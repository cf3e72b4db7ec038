package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPosting_VisibleStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		status    PostingStatus
		expiresAt *time.Time
		want      PostingStatus
	}{
		{"open with future expiry", PostingStatusOpen, &future, PostingStatusOpen},
		{"open with past expiry reads expired", PostingStatusOpen, &past, PostingStatusExpired},
		{"open without expiry stays open", PostingStatusOpen, nil, PostingStatusOpen},
		{"accepted never flips", PostingStatusAccepted, &past, PostingStatusAccepted},
		{"already expired", PostingStatusExpired, nil, PostingStatusExpired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Posting{Status: tt.status, ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, p.VisibleStatus(now))
		})
	}
}

func TestPosting_Expired_BoundaryIsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p := &Posting{Status: PostingStatusOpen, ExpiresAt: &now}

	assert.True(t, p.Expired(now))
}
