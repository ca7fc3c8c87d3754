package ats

import "strconv"

type SearchRequest struct {
	JDText string
	MinExp int
	TopK   int
	// RequiredSkills is free text passed through to the backend un-parsed.
	RequiredSkills string
	Model          string
}

type SearchResponse struct {
	Total int `json:"total"`
	// Matches stay raw here; the candidate package turns them into the
	// canonical representation.
	Matches   []any      `json:"matches"`
	QueryInfo *QueryInfo `json:"query_info"`
}

type QueryInfo struct {
	MinExp         int      `json:"min_exp"`
	RequiredSkills []string `json:"required_skills"`
}

// Search runs a job-description match against the candidate store.
func (c *Client) Search(req *SearchRequest) (*SearchResponse, error) {
	fields := map[string]string{
		"jd_text": req.JDText,
		"min_exp": strconv.Itoa(req.MinExp),
		"top_k":   strconv.Itoa(req.TopK),
	}

	if req.RequiredSkills != "" {
		fields["required_skills"] = req.RequiredSkills
	}

	if req.Model != "" {
		fields["model"] = req.Model
	}

	var resp SearchResponse
	if err := c.postMultipart(searchPath, fields, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
