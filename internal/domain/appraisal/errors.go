package appraisal

import "errors"

var (
	ErrNotFound          = errors.New("appraisal not found")
	ErrScoreOutOfRange   = errors.New("criteria score must be between 1 and 10")
	ErrCommentsTooShort  = errors.New("comments must be at least 5 characters")
	ErrDuplicateRating   = errors.New("evaluator has already rated this appraisal")
	ErrDuplicateCycle    = errors.New("appraisal cycle already exists for this employee and month")
	ErrAlreadyFinalized  = errors.New("appraisal is already finalized")
	ErrMissingConclusion = errors.New("finalization narrative is required")
	ErrUnknownSlot       = errors.New("unknown reviewer slot")
)
