package workflow

import (
	"errors"
	"fmt"

	"github.com/Reriiii/AIRecruiter/internal/ats"
	"github.com/Reriiii/AIRecruiter/internal/candidate"
)

// invalidResponseMsg is what the user sees when the backend answered in a
// shape the normalizer cannot interpret. The raw payload goes to the debug
// log, never to the user.
const invalidResponseMsg = "invalid server response"

// ValidationError is raised locally, before any request is sent. It is
// always recoverable and never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PartialBatchFailure reports the items that failed during a bulk delete.
// The batch itself ran to completion and state was reconciled by refetch.
type PartialBatchFailure struct {
	Results []DeleteResult
}

type DeleteResult struct {
	ID  string
	Err error
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("%d of %d deletes failed", len(e.Failed()), len(e.Results))
}

func (e *PartialBatchFailure) Failed() []DeleteResult {
	failed := make([]DeleteResult, 0)
	for _, r := range e.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}

// UserMessage maps any orchestration error to the string shown to the
// user: validation errors verbatim, transport errors via their extracted
// detail, normalization faults as the generic invalid-response message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	var te *ats.TransportError
	if errors.As(err, &te) {
		return te.Message()
	}

	if errors.Is(err, candidate.ErrInvalidShape) || errors.Is(err, candidate.ErrDuplicateID) {
		return invalidResponseMsg
	}

	return err.Error()
}
