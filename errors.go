package inflation

import (
	"errors"
	"fmt"
)

// Failure conditions of the pipeline. They are terminal for a run: inputs are
// static files read once, so none of them is worth retrying.
var (
	ErrDataUnavailable  = errors.New("data unavailable")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrMergeEmpty       = errors.New("no overlapping years")
	ErrInsufficientData = errors.New("insufficient data")
	ErrZeroVariance     = errors.New("zero variance")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnordered        = errors.New("rows are not in ascending year order")
)

// Stage identifies a step of the pipeline.
type Stage string

const (
	StageLoad       Stage = "load"
	StageMerge      Stage = "merge"
	StageStatistics Stage = "statistics"
	StagePPP        Stage = "ppp"
)

// StageError reports which stage of the pipeline failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// FailedStage returns the stage that produced err, if any.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
