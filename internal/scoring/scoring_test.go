package scoring

import (
	"testing"

	"exphub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExpRange(t *testing.T) {
	tests := []struct {
		name         string
		forks        int
		closedIssues int
		stars        int
		want         domain.ExpRange
	}{
		{
			name:         "active_repo_hits_both_clamps",
			forks:        10,
			closedIssues: 5,
			stars:        100,
			want:         domain.ExpRange{Min: 1250, Max: 1750},
		},
		{
			name:         "dead_repo_centers_near_417",
			forks:        0,
			closedIssues: 0,
			stars:        0,
			want:         domain.ExpRange{Min: 351, Max: 484},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeExpRange(tt.forks, tt.closedIssues, tt.stars)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeExpRange_MaxMayExceedCeiling(t *testing.T) {
	got := ComputeExpRange(5000, 3000, 50000)
	assert.Equal(t, 1500+250, got.Max, "max is not re-clamped to 1500")
	assert.Equal(t, 1500-250, got.Min)
}

func TestComputeExpRange_Invariants(t *testing.T) {
	inputs := []struct{ forks, closed, stars int }{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{3, 7, 12},
		{100, 200, 300},
		{10000, 0, 0},
		{0, 0, 1000000},
	}

	for _, in := range inputs {
		got := ComputeExpRange(in.forks, in.closed, in.stars)
		require.LessOrEqual(t, got.Min, got.Max, "inputs %+v", in)
		require.GreaterOrEqual(t, got.Min, 0, "inputs %+v", in)
	}
}

func TestComputeIssueExp(t *testing.T) {
	tests := []struct {
		name       string
		comments   int
		labels     int
		bodyLength int
		minExp     int
		maxExp     int
		want       int
	}{
		{
			name:       "reference_issue",
			comments:   3,
			labels:     2,
			bodyLength: 200,
			minExp:     1250,
			maxExp:     1750,
			want:       1254,
		},
		{
			name:   "empty_issue_sits_at_min",
			minExp: 100,
			maxExp: 400,
			want:   100,
		},
		{
			name:       "score_wraps_around_span",
			comments:   0,
			labels:     0,
			bodyLength: 7000, // score/3 = 35, span = 30 -> wraps to 5
			minExp:     100,
			maxExp:     130,
			want:       105,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeIssueExp(tt.comments, tt.labels, tt.bodyLength, tt.minExp, tt.maxExp)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeIssueExp_AlwaysWithinRange(t *testing.T) {
	ranges := []domain.ExpRange{
		{Min: 50, Max: 80},
		{Min: 1250, Max: 1750},
		{Min: 400, Max: 400}, // degenerate range still spans at least 30
	}

	for _, r := range ranges {
		for comments := 0; comments <= 50; comments += 10 {
			for body := 0; body <= 100000; body += 9973 {
				got := ComputeIssueExp(comments, comments%5, body, r.Min, r.Max)
				require.GreaterOrEqual(t, got, r.Min)
				require.LessOrEqual(t, got, r.Max)
			}
		}
	}
}
