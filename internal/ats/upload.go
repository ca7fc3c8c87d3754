package ats

import "io"

type UploadRequest struct {
	FileName string
	Content  io.Reader
	// Model is the composite "provider:model_id" selection, empty for the
	// backend default.
	Model string
}

// UploadCV posts the resume file for parsing and returns the raw response
// payload. The caller normalizes it; the wire shape has changed between
// backend versions and the normalizer copes with all of them.
func (c *Client) UploadCV(req *UploadRequest) (map[string]any, error) {
	fields := map[string]string{}
	if req.Model != "" {
		fields["model"] = req.Model
	}

	var raw map[string]any
	if err := c.postMultipart(uploadPath, fields, &fileField{name: req.FileName, content: req.Content}, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}
