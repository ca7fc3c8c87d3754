package workflow

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Reriiii/AIRecruiter/internal/candidate"
	"github.com/Reriiii/AIRecruiter/internal/utils"
)

// Delete removes one candidate, holding its busy marker for the duration of
// the operation. The marker is released whether the delete succeeds or
// fails, so an error can never leave the entity locked.
func (o *Orchestrator) Delete(id string) error {
	if id == "" {
		return validationErr("id", "candidate id is required")
	}

	if !o.busy.Add(id) {
		return validationErr("id", "a delete for this candidate is already in progress")
	}
	defer o.busy.Release(id)

	if err := o.gateway.DeleteCandidate(id); err != nil {
		return fmt.Errorf("delete candidate %s: %w", id, err)
	}

	o.logger.Info("deleted candidate", zap.String("candidate_id", id))

	return nil
}

// DeleteAll removes every stored candidate, issuing the deletes one at a
// time to bound backend load. Individual failures are logged and skipped;
// the loop always runs to the end. Afterwards exactly one refetch
// reconciles the collection with the backend's authoritative view, and a
// PartialBatchFailure reports any items that failed.
func (o *Orchestrator) DeleteAll(pacing time.Duration) (*candidate.Candidates, []DeleteResult, error) {
	current, err := o.list(0)
	if err != nil {
		return nil, nil, err
	}

	results := o.deleteSequentially(current.IDs(), pacing)

	remaining, err := o.list(0)
	if err != nil {
		return nil, results, err
	}

	if failed := (&PartialBatchFailure{Results: results}).Failed(); len(failed) > 0 {
		return remaining, results, &PartialBatchFailure{Results: results}
	}

	return remaining, results, nil
}

// deleteSequentially folds over the id sequence producing one result per
// id. Iteration mechanics stay separate from the refetch/report policy,
// which the caller owns.
func (o *Orchestrator) deleteSequentially(ids []string, pacing time.Duration) []DeleteResult {
	results := make([]DeleteResult, 0, len(ids))

	for i, id := range ids {
		if i > 0 && pacing > 0 {
			if err := utils.WaitFor(o.ctx, pacing); err != nil {
				o.logger.Warn("bulk delete pacing interrupted", zap.Error(err))
			}
		}

		err := o.Delete(id)
		if err != nil {
			o.logger.Warn("skipping failed delete",
				zap.String("candidate_id", id),
				zap.String("reason", UserMessage(err)),
			)
		}

		results = append(results, DeleteResult{ID: id, Err: err})
	}

	return results
}
