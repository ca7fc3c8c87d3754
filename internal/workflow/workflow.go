// Package workflow orchestrates the candidate views: it validates user
// input before any network call, routes gateway responses through the
// normalizer, and tracks operation lifecycles so the presentation layer
// only ever sees tagged results or descriptive error strings.
package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/Reriiii/AIRecruiter/internal/ats"
	"github.com/Reriiii/AIRecruiter/internal/catalog"
	"github.com/Reriiii/AIRecruiter/internal/tracker"
)

// Logical view names. Each owns an independent tracker and its own copy of
// the candidate collection; views reconcile by refetching, never by sharing
// state.
const (
	ViewList      = "list"
	ViewDashboard = "dashboard"
	ViewSearch    = "search"
	ViewUpload    = "upload"
)

// Gateway is the surface of the backend API the orchestrator consumes,
// implemented by *ats.Client.
type Gateway interface {
	UploadCV(req *ats.UploadRequest) (map[string]any, error)
	Search(req *ats.SearchRequest) (*ats.SearchResponse, error)
	ListCandidates(limit int) (*ats.ListResponse, error)
	DeleteCandidate(id string) error
	Stats() (*ats.Stats, error)
}

type Orchestrator struct {
	ctx     context.Context
	gateway Gateway
	catalog *catalog.Catalog
	logger  *zap.Logger
	busy    *tracker.BusySet
	views   map[string]*tracker.View
}

func New(ctx context.Context, gateway Gateway, cat *catalog.Catalog, logger *zap.Logger) *Orchestrator {
	if cat == nil {
		cat = catalog.Default()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	views := make(map[string]*tracker.View)
	for _, name := range []string{ViewList, ViewDashboard, ViewSearch, ViewUpload} {
		views[name] = tracker.NewView(name)
	}

	return &Orchestrator{
		ctx:     ctx,
		gateway: gateway,
		catalog: cat,
		logger:  logger,
		busy:    tracker.NewBusySet(),
		views:   views,
	}
}

// View returns the tracker for the named logical view.
func (o *Orchestrator) View(name string) *tracker.View {
	return o.views[name]
}

// Busy exposes the entity busy set so the presentation layer can disable
// conflicting actions.
func (o *Orchestrator) Busy() *tracker.BusySet {
	return o.busy
}
