package compose

import (
	"errors"
	"fmt"
)

var (
	// ErrSaveFailed wraps every upload, transport or rejection failure
	// returned by Orchestrator.Save under FailureSurface.
	ErrSaveFailed = errors.New("diary save failed")

	ErrValidation = errors.New("draft invalid")

	ErrEmptyDraft    = fmt.Errorf("%w: nothing written", ErrValidation)
	ErrTitleRequired = fmt.Errorf("%w: title required", ErrValidation)
	ErrBodyRequired  = fmt.Errorf("%w: body required", ErrValidation)

	ErrNoProfile = errors.New("no caller profile")
)

// RejectedError is returned (wrapped) when the server answers with a
// non-zero code.
type RejectedError struct {
	Code    int32
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("entry rejected with code %d", e.Code)
	}
	return fmt.Sprintf("entry rejected with code %d: %s", e.Code, e.Message)
}
