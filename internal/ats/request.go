package ats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// getJSON makes a GET request and decodes the 2xx body into target. A nil
// target discards the body after the status check.
func (c *Client) getJSON(path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target)
}

// postMultipart sends form fields plus an optional file as multipart form
// data, the encoding the backend expects for both upload and search.
func (c *Client) postMultipart(path string, fields map[string]string, file *fileField, target any) error {
	var body bytes.Buffer

	w := multipart.NewWriter(&body)

	for key, val := range fields {
		field, err := w.CreateFormField(key)
		if err != nil {
			return fmt.Errorf("create form field %s: %w", key, err)
		}

		if _, err = io.Copy(field, strings.NewReader(val)); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}

	if file != nil {
		part, err := w.CreateFormFile("file", file.name)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}

		if _, err = io.Copy(part, file.content); err != nil {
			return fmt.Errorf("write form file: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+path, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, target)
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodDelete, c.APIURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.do(req, nil)
}

type fileField struct {
	name    string
	content io.Reader
}

// do runs the request and decodes the response. Any failure comes back as a
// TransportError so callers never see a raw transport fault.
func (c *Client) do(req *http.Request, target any) error {
	c.setHeaders(req)

	c.logger.Debug("make request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get("X-Request-ID")),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("got response",
		zap.Int("status", resp.StatusCode),
		zap.String("url", req.URL.String()),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp)
	}

	if target == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Status: resp.StatusCode, Err: err}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decode response body: %w", err)}
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
}
