package reports

import (
	"fmt"
	"math"

	"ams/internal/domain/appraisal"
)

type Summary struct {
	Total              int            `json:"total"`
	PendingAssignment  int            `json:"pendingAssignment"`
	InProgress         int            `json:"inProgress"`
	PendingReview      int            `json:"pendingReview"`
	Finalized          int            `json:"finalized"`
	CompletionRate     float64        `json:"completionRate"`
	AverageOrgRating   float64        `json:"averageOrgRating"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}

// BuildSummary aggregates dashboard counters over the current appraisal
// snapshot. The org average is the mean of per-cycle averages, over cycles
// that have at least one rating.
func BuildSummary(records []appraisal.Appraisal) Summary {
	summary := Summary{
		Total:              len(records),
		RatingDistribution: map[string]int{},
	}

	ratedSum := 0.0
	ratedCount := 0
	for _, record := range records {
		switch record.Status {
		case appraisal.StatusPendingAssignment:
			summary.PendingAssignment++
		case appraisal.StatusInProgress:
			summary.InProgress++
		case appraisal.StatusPendingReview:
			summary.PendingReview++
		case appraisal.StatusFinalized:
			summary.Finalized++
		}
		if record.AverageRating != nil {
			ratedSum += *record.AverageRating
			ratedCount++
			key := fmt.Sprintf("%d", int(*record.AverageRating+0.5))
			summary.RatingDistribution[key]++
		}
	}

	if summary.Total > 0 {
		summary.CompletionRate = float64(summary.Finalized) / float64(summary.Total)
	}
	if ratedCount > 0 {
		summary.AverageOrgRating = math.Round(ratedSum/float64(ratedCount)*10) / 10
	}
	return summary
}
