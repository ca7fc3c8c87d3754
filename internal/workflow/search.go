package workflow

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Reriiii/AIRecruiter/internal/ats"
	"github.com/Reriiii/AIRecruiter/internal/candidate"
	"github.com/Reriiii/AIRecruiter/internal/catalog"
	"github.com/Reriiii/AIRecruiter/internal/logger"
	"github.com/Reriiii/AIRecruiter/internal/utils"
)

const (
	defaultTopK = 10
	maxTopK     = 50
)

type SearchParams struct {
	JDText string
	MinExp int
	// TopK caps the result count; 0 means the default of 10.
	TopK int
	// RequiredSkills is comma-separated free text forwarded to the backend
	// un-parsed.
	RequiredSkills string
	Provider       string
	Model          string
}

type SearchResult struct {
	Total     int
	Matches   *candidate.Candidates
	QueryInfo *ats.QueryInfo
}

// Search validates the query, runs the match against the backend and
// returns normalized results.
func (o *Orchestrator) Search(p SearchParams) (*SearchResult, error) {
	view := o.views[ViewSearch]
	ticket := view.Begin()

	result, err := o.search(p)
	if err != nil {
		view.Fail(ticket, UserMessage(err))
		return nil, err
	}

	view.Succeed(ticket)

	return result, nil
}

func (o *Orchestrator) search(p SearchParams) (*SearchResult, error) {
	if err := validateSearch(&p, o.catalog); err != nil {
		return nil, err
	}

	o.logger.Info("searching candidates",
		append(logger.CommonFields(p.Provider, p.Model),
			zap.Int("min_exp", p.MinExp),
			zap.Int("top_k", p.TopK),
			zap.String("jd_preview", utils.TruncateForLog(p.JDText, 120)),
		)...,
	)

	resp, err := o.gateway.Search(&ats.SearchRequest{
		JDText:         strings.TrimSpace(p.JDText),
		MinExp:         p.MinExp,
		TopK:           p.TopK,
		RequiredSkills: p.RequiredSkills,
		Model:          catalog.CompositeID(p.Provider, p.Model),
	})
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}

	matches, err := candidate.NormalizeAll(resp.Matches)
	if err != nil {
		o.logger.Debug("unparseable search matches", zap.Any("payload", resp.Matches), zap.Error(err))
		return nil, fmt.Errorf("normalize search matches: %w", err)
	}

	return &SearchResult{
		Total:     resp.Total,
		Matches:   matches,
		QueryInfo: resp.QueryInfo,
	}, nil
}

func validateSearch(p *SearchParams, cat *catalog.Catalog) error {
	if strings.TrimSpace(p.JDText) == "" {
		return validationErr("jd_text", "job description must not be empty")
	}

	if p.MinExp < 0 {
		return validationErr("min_exp", "minimum experience must not be negative")
	}

	if p.TopK == 0 {
		p.TopK = defaultTopK
	}

	if p.TopK < 1 || p.TopK > maxTopK {
		return validationErr("top_k", fmt.Sprintf("result count must be between 1 and %d", maxTopK))
	}

	if err := cat.Validate(p.Provider, p.Model); err != nil {
		return validationErr("model", err.Error())
	}

	return nil
}
