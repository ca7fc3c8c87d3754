package workflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Reriiii/AIRecruiter/internal/candidate"
)

const dashboardRecentLimit = 10

// List fetches and normalizes the stored candidate collection.
func (o *Orchestrator) List(limit int) (*candidate.Candidates, error) {
	view := o.views[ViewList]
	ticket := view.Begin()

	candidates, err := o.list(limit)
	if err != nil {
		view.Fail(ticket, UserMessage(err))
		return nil, err
	}

	view.Succeed(ticket)

	return candidates, nil
}

func (o *Orchestrator) list(limit int) (*candidate.Candidates, error) {
	resp, err := o.gateway.ListCandidates(limit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	candidates, err := candidate.NormalizeAll(resp.Candidates)
	if err != nil {
		o.logger.Debug("unparseable candidate list", zap.Any("payload", resp.Candidates), zap.Error(err))
		return nil, fmt.Errorf("normalize candidate list: %w", err)
	}

	return candidates, nil
}

// DashboardData combines backend-wide stats with aggregates derived from
// the most recently loaded candidates. Derived numbers are scoped to the
// loaded collection; only the total comes from the stats endpoint.
type DashboardData struct {
	Stats  *candidate.Stats
	Recent *candidate.Candidates
}

// Dashboard fetches stats plus a recent slice of candidates and recomputes
// the aggregates from scratch.
func (o *Orchestrator) Dashboard() (*DashboardData, error) {
	view := o.views[ViewDashboard]
	ticket := view.Begin()

	data, err := o.dashboard()
	if err != nil {
		view.Fail(ticket, UserMessage(err))
		return nil, err
	}

	view.Succeed(ticket)

	return data, nil
}

func (o *Orchestrator) dashboard() (*DashboardData, error) {
	backendStats, err := o.gateway.Stats()
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	recent, err := o.list(dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	stats := candidate.Aggregate(recent)
	stats.TotalBackend = backendStats.TotalCandidates

	return &DashboardData{Stats: stats, Recent: recent}, nil
}
