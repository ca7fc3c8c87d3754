package ats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(context.Background(), zap.NewNop(), server.URL), server
}

func TestListCandidates(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/candidates" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if r.URL.Query().Get("limit") != "10" {
			t.Errorf("expected limit 10, got %q", r.URL.Query().Get("limit"))
		}

		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("expected a request id header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 1, "candidates": [{"id": "c1", "metadata": {"full_name": "Jane"}}]}`))
	})

	resp, err := client.ListCandidates(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 1 || len(resp.Candidates) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSearchSendsFormFields(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}

		if got := r.FormValue("jd_text"); got != "golang backend" {
			t.Errorf("unexpected jd_text: %q", got)
		}

		if got := r.FormValue("top_k"); got != "5" {
			t.Errorf("unexpected top_k: %q", got)
		}

		if got := r.FormValue("model"); got != "openai:gpt-4o" {
			t.Errorf("unexpected model: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 1, "matches": [{"id": "c1", "full_name": "Jane", "score": 0.9}], "query_info": {"min_exp": 2, "required_skills": ["go"]}}`))
	})

	resp, err := client.Search(&SearchRequest{
		JDText: "golang backend",
		MinExp: 2,
		TopK:   5,
		Model:  "openai:gpt-4o",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 1 || len(resp.Matches) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if resp.QueryInfo == nil || resp.QueryInfo.MinExp != 2 {
		t.Fatalf("unexpected query info: %+v", resp.QueryInfo)
	}
}

func TestUploadCVSendsFile(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart form: %v", err)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename != "cv.pdf" {
			t.Errorf("unexpected filename: %q", header.Filename)
		}

		if got := r.FormValue("model"); got != "gemini:gemini-1.5-flash" {
			t.Errorf("unexpected model: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "success", "id": "c9", "data": {"full_name": "Jane", "role": "Engineer"}}`))
	})

	raw, err := client.UploadCV(&UploadRequest{
		FileName: "cv.pdf",
		Content:  strings.NewReader("%PDF-1.4 fake"),
		Model:    "gemini:gemini-1.5-flash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw["id"] != "c9" {
		t.Fatalf("unexpected payload: %v", raw)
	}
}

func TestDeleteCandidate(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/candidates/c1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		w.Write([]byte(`{"status": "success"}`))
	})

	if err := client.DeleteCandidate("c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.DeleteCandidate(""); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestTransportErrorDetailExtraction(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "candidate not found"}`))
	})

	err := client.DeleteCandidate("missing")
	if err == nil {
		t.Fatalf("expected error")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T", err)
	}

	if te.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", te.Status)
	}

	if te.Message() != "candidate not found" {
		t.Fatalf("unexpected message: %q", te.Message())
	}
}

func TestTransportErrorWithoutDetail(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.Stats()

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T", err)
	}

	if te.Message() != genericFailure {
		t.Fatalf("expected generic message, got %q", te.Message())
	}
}

func TestTransportErrorOnConnectionFailure(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server.Close()

	_, err := client.Health()

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T", err)
	}

	if te.Err == nil || te.Message() == "" {
		t.Fatalf("expected transport-level message, got %q", te.Message())
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "online", "service": "Local Smart ATS API", "version": "2.0"}`))
	})

	health, err := client.Health()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if health.Status != "online" {
		t.Fatalf("unexpected status: %q", health.Status)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_candidates": 42, "collection_name": "candidates"}`))
	})

	stats, err := client.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalCandidates != 42 {
		t.Fatalf("unexpected total: %d", stats.TotalCandidates)
	}
}
