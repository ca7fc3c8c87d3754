package ats

import (
	"fmt"
	"net/url"
	"strconv"
)

const defaultListLimit = 100

type ListResponse struct {
	Total int `json:"total"`
	// Candidates stay raw for the same reason search matches do.
	Candidates []any `json:"candidates"`
}

// ListCandidates fetches up to limit stored candidates.
func (c *Client) ListCandidates(limit int) (*ListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var resp ListResponse
	if err := c.getJSON(listPath, q, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// DeleteCandidate removes one candidate. Any 2xx body counts as
// confirmation.
func (c *Client) DeleteCandidate(id string) error {
	if id == "" {
		return fmt.Errorf("candidate id is required")
	}

	return c.delete(fmt.Sprintf("%s/%s", listPath, url.PathEscape(id)))
}
