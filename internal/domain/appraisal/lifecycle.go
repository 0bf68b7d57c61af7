package appraisal

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// The lifecycle engine is stateless: every operation takes an Appraisal value
// and returns a new one, never mutating in place. Callers (the HTTP handlers)
// are responsible for swapping the result back into the store.

const MinCommentLength = 5

// New produces a fresh cycle in Pending Assignment with empty slots and no
// ratings. Duplicate (employee, month, year) cycles are guarded at the store.
func New(employeeID, month string, year int) Appraisal {
	return Appraisal{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Status:     StatusPendingAssignment,
		Ratings:    []AppraisalRating{},
	}
}

// AssignReviewer sets one reviewer slot; last write wins, so re-assigning the
// same user is idempotent. Once all three slots are filled the cycle advances
// to In Progress, but only from Pending Assignment or In Progress. A later
// status never regresses. Slot/role agreement is a precondition checked by the
// access policy, not re-validated here.
func AssignReviewer(a Appraisal, slot Slot, userID string) (Appraisal, error) {
	switch slot {
	case SlotHR:
		a.HRID = userID
	case SlotTeamLead:
		a.TLID = userID
	case SlotManager:
		a.ManagerID = userID
	default:
		return Appraisal{}, ErrUnknownSlot
	}

	if a.FilledSlots() == 3 && (a.Status == StatusPendingAssignment || a.Status == StatusInProgress) {
		a.Status = StatusInProgress
	}
	return a, nil
}

// SubmitRating appends one evaluator's scores and recomputes the running
// average. Invalid input is rejected before any change; scores are never
// clamped. When every assigned reviewer has submitted, the cycle advances to
// Pending Review.
func SubmitRating(a Appraisal, evaluatorID, evaluatorRole string, scores CriteriaScores, comments string, now time.Time) (Appraisal, error) {
	for _, score := range scores.values() {
		if score < 1 || score > 10 {
			return Appraisal{}, ErrScoreOutOfRange
		}
	}
	if len(strings.TrimSpace(comments)) < MinCommentLength {
		return Appraisal{}, ErrCommentsTooShort
	}
	if a.RatedBy(evaluatorID) {
		return Appraisal{}, ErrDuplicateRating
	}

	ratings := make([]AppraisalRating, len(a.Ratings), len(a.Ratings)+1)
	copy(ratings, a.Ratings)
	a.Ratings = append(ratings, AppraisalRating{
		EvaluatorID:   evaluatorID,
		EvaluatorRole: evaluatorRole,
		Criteria:      scores,
		Comments:      comments,
		SubmittedAt:   now,
	})

	average := AverageRating(a.Ratings)
	a.AverageRating = &average

	required := a.FilledSlots()
	if required > 0 && len(a.Ratings) >= required {
		a.Status = StatusPendingReview
	}
	return a, nil
}

// Finalize records the conclusion and closes the cycle. The policy layer
// restricts finalization to Pending Review; the engine only refuses to
// finalize twice, keeping the status ordering monotonic.
func Finalize(a Appraisal, mom, incrementSlab string) (Appraisal, error) {
	if a.Status == StatusFinalized {
		return Appraisal{}, ErrAlreadyFinalized
	}
	if strings.TrimSpace(mom) == "" {
		return Appraisal{}, ErrMissingConclusion
	}
	a.Status = StatusFinalized
	a.FinalMOM = mom
	a.IncrementSlab = incrementSlab
	return a, nil
}

// AverageRating is the mean across ratings of each rating's own five-criterion
// mean, rounded to one decimal place.
func AverageRating(ratings []AppraisalRating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, rating := range ratings {
		sum += rating.Criteria.Mean()
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}

var statusRank = map[string]int{
	StatusPendingAssignment: 0,
	StatusInProgress:        1,
	StatusPendingReview:     2,
	StatusFinalized:         3,
}

// StatusRank orders the forward lifecycle statuses; Rejected sits outside the
// ordering as an alternate terminal.
func StatusRank(status string) int {
	if rank, ok := statusRank[status]; ok {
		return rank
	}
	return -1
}
