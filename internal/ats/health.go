package ats

type Health struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Health is a one-shot liveness probe: any 2xx means online, any failure
// means offline.
func (c *Client) Health() (*Health, error) {
	var health Health
	if err := c.getJSON(healthPath, nil, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
