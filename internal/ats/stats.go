package ats

type Stats struct {
	TotalCandidates int    `json:"total_candidates"`
	CollectionName  string `json:"collection_name"`
}

// Stats reports the backend's authoritative candidate count.
func (c *Client) Stats() (*Stats, error) {
	var stats Stats
	if err := c.getJSON(statsPath, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
