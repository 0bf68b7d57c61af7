package appraisal

import "time"

const (
	StatusPendingAssignment = "Pending Assignment"
	StatusInProgress        = "In Progress"
	StatusPendingReview     = "Pending Review"
	StatusFinalized         = "Finalized"
	// StatusRejected is reserved for future policy; no operation currently
	// produces it.
	StatusRejected = "Rejected"
)

type Slot string

const (
	SlotHR       Slot = "hr"
	SlotTeamLead Slot = "tl"
	SlotManager  Slot = "manager"
)

// CriteriaScores is the fixed rating schema: five named dimensions, each an
// integer in [1,10]. Modelled as a struct rather than a map so a rating can
// never carry missing or extra keys.
type CriteriaScores struct {
	Skills        int `json:"skills"`
	Personality   int `json:"personality"`
	Communication int `json:"communication"`
	Teamwork      int `json:"teamwork"`
	Performance   int `json:"performance"`
}

func (c CriteriaScores) values() [5]int {
	return [5]int{c.Skills, c.Personality, c.Communication, c.Teamwork, c.Performance}
}

// Mean is the unweighted average of the five dimension scores.
func (c CriteriaScores) Mean() float64 {
	sum := 0
	for _, v := range c.values() {
		sum += v
	}
	return float64(sum) / 5
}

// AppraisalRating is one evaluator's submission. Immutable once appended;
// EvaluatorRole is a snapshot taken at submission time, never re-derived.
type AppraisalRating struct {
	EvaluatorID   string         `json:"evaluatorId"`
	EvaluatorRole string         `json:"evaluatorRole"`
	Criteria      CriteriaScores `json:"criteria"`
	Comments      string         `json:"comments"`
	SubmittedAt   time.Time      `json:"submittedAt"`
}

// Appraisal is one review cycle instance for one employee in one month/year.
type Appraisal struct {
	ID            string            `json:"id"`
	EmployeeID    string            `json:"employeeId"`
	Month         string            `json:"month"`
	Year          int               `json:"year"`
	Status        string            `json:"status"`
	HRID          string            `json:"hrId,omitempty"`
	TLID          string            `json:"tlId,omitempty"`
	ManagerID     string            `json:"managerId,omitempty"`
	Ratings       []AppraisalRating `json:"ratings"`
	AverageRating *float64          `json:"averageRating,omitempty"`
	FinalMOM      string            `json:"finalMOM,omitempty"`
	IncrementSlab string            `json:"incrementSlab,omitempty"`
}

// FilledSlots counts the reviewer slots that have been assigned.
func (a Appraisal) FilledSlots() int {
	count := 0
	for _, id := range []string{a.HRID, a.TLID, a.ManagerID} {
		if id != "" {
			count++
		}
	}
	return count
}

// HasReviewer reports whether userID occupies any of the three slots.
func (a Appraisal) HasReviewer(userID string) bool {
	return userID != "" && (a.HRID == userID || a.TLID == userID || a.ManagerID == userID)
}

// RatedBy reports whether evaluatorID has already submitted a rating.
func (a Appraisal) RatedBy(evaluatorID string) bool {
	for _, rating := range a.Ratings {
		if rating.EvaluatorID == evaluatorID {
			return true
		}
	}
	return false
}
