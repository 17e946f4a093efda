// Package scoring derives EXP values for projects and issues from their
// activity metrics. All functions are pure and deterministic.
package scoring

import (
	"math"

	"exphub/internal/domain"
)

const (
	baseExp = 50   // floor for the weakest projects
	highExp = 1500 // normalization ceiling; range max may still exceed it

	forksWeight        = 1.4
	closedIssuesWeight = 1.8
	starsWeight        = 1.3

	commentsWeight   = 2.2
	labelsWeight     = 1.6
	bodyLengthWeight = 0.015
)

// ComputeExpRange maps a repository's activity metrics onto the {min, max}
// EXP bounds for its issues. Logarithmic weighting keeps huge repositories
// from dominating linearly; the resulting max is intentionally not clamped
// back to highExp, so a very active repository can exceed it.
func ComputeExpRange(forks, closedIssues, stars int) domain.ExpRange {
	f := float64(forks)
	c := float64(closedIssues)
	s := float64(stars)

	weighted := f*math.Log2(f+2)*forksWeight +
		c*math.Log2(c+2)*closedIssuesWeight +
		s*math.Log2(s+2)*starsWeight

	normalized := clamp(math.Log2(weighted+5)*180, baseExp, highExp)

	rangeFactor := math.Log2(weighted+3) * 0.2
	rangeSize := clamp(normalized*rangeFactor, 30, 500)

	return domain.ExpRange{
		Min: int(math.Floor(normalized - rangeSize*0.5)),
		Max: int(math.Floor(normalized + rangeSize*0.5)),
	}
}

// ComputeIssueExp scores a single issue inside [minExp, maxExp]. The score
// is wrapped into the range with a modulo, so two issues with very different
// activity can land near each other once their scores cross a multiple of
// the span.
func ComputeIssueExp(comments, labelCount, bodyLength, minExp, maxExp int) int {
	span := math.Max(30, float64(maxExp-minExp))

	score := float64(comments)*commentsWeight +
		float64(labelCount)*labelsWeight +
		float64(bodyLength)*bodyLengthWeight

	exp := clamp(float64(minExp)+math.Mod(score/3, span), float64(minExp), float64(maxExp))
	return int(math.Floor(exp))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
