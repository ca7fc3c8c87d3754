package workflow

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Reriiii/AIRecruiter/internal/ats"
	"github.com/Reriiii/AIRecruiter/internal/candidate"
	"github.com/Reriiii/AIRecruiter/internal/catalog"
	"github.com/Reriiii/AIRecruiter/internal/logger"
)

// maxUploadSize caps resume files at 10 MiB, matching the backend limit.
const maxUploadSize = 10 << 20

type UploadParams struct {
	FileName string
	Size     int64
	Content  io.Reader
	// Provider and Model select the parsing model. Both may be empty to use
	// the backend default; when either is given, both are required and the
	// pair must exist in the catalog.
	Provider string
	Model    string
}

// Upload validates the file and model selection, submits the resume and
// returns the normalized candidate. Validation failures short-circuit
// before any request is issued.
func (o *Orchestrator) Upload(p UploadParams) (*candidate.Candidate, error) {
	view := o.views[ViewUpload]
	ticket := view.Begin()

	c, err := o.upload(p)
	if err != nil {
		view.Fail(ticket, UserMessage(err))
		return nil, err
	}

	view.Succeed(ticket)

	return c, nil
}

func (o *Orchestrator) upload(p UploadParams) (*candidate.Candidate, error) {
	if err := validateUpload(p, o.catalog); err != nil {
		return nil, err
	}

	req := &ats.UploadRequest{
		FileName: p.FileName,
		Content:  p.Content,
	}

	if p.Provider != "" {
		req.Model = catalog.CompositeID(p.Provider, p.Model)
	}

	o.logger.Info("uploading resume",
		append(logger.CommonFields(p.Provider, p.Model),
			zap.String("file_name", p.FileName),
			zap.Int64("file_size", p.Size),
		)...,
	)

	raw, err := o.gateway.UploadCV(req)
	if err != nil {
		return nil, fmt.Errorf("upload resume: %w", err)
	}

	c, err := candidate.Normalize(raw)
	if err != nil {
		o.logger.Debug("unparseable upload response", zap.Any("payload", raw), zap.Error(err))
		return nil, fmt.Errorf("normalize upload response: %w", err)
	}

	return c, nil
}

func validateUpload(p UploadParams, cat *catalog.Catalog) error {
	if !strings.HasSuffix(p.FileName, ".pdf") {
		return validationErr("file", "only PDF files are accepted")
	}

	if p.Size > maxUploadSize {
		return validationErr("file", "file exceeds the 10MB limit")
	}

	if p.Provider == "" && p.Model == "" {
		return nil
	}

	if err := cat.Validate(p.Provider, p.Model); err != nil {
		return validationErr("model", err.Error())
	}

	return nil
}
