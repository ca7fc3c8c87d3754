// Package ats is the HTTP client for the AIRecruiter backend API. It owns
// transport concerns only: request construction, response decoding and the
// transport error type. Interpreting payload shapes is left to the
// candidate package.
package ats

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:8000"
	userAgent     = "Reriiii/AIRecruiter-cli"

	uploadPath = "/api/candidates"
	searchPath = "/api/search"
	listPath   = "/api/candidates"
	statsPath  = "/api/stats"
	healthPath = "/"
)

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		UserAgent: userAgent,
		APIURL:    apiURL,
	}
}
