package candidate

import (
	"errors"
	"reflect"
	"testing"
)

func bareRecord() map[string]any {
	return map[string]any{
		"id":        "c1",
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
		"role":      "Backend Engineer",
		"years_exp": 5,
		"skills":    []any{"Go", "Docker"},
	}
}

func TestNormalizeAcceptedShapesAgree(t *testing.T) {
	t.Parallel()

	record := bareRecord()

	tests := []struct {
		name string
		raw  any
	}{
		{
			name: "bare record",
			raw:  record,
		},
		{
			name: "single wrapper",
			raw: map[string]any{
				"status": "success",
				"id":     "c1",
				"data": map[string]any{
					"full_name": "Jane Doe",
					"email":     "jane@example.com",
					"role":      "Backend Engineer",
					"years_exp": 5,
					"skills":    []any{"Go", "Docker"},
				},
			},
		},
		{
			name: "double wrapper",
			raw: map[string]any{
				"data": map[string]any{
					"status": "success",
					"id":     "c1",
					"data": map[string]any{
						"full_name": "Jane Doe",
						"email":     "jane@example.com",
						"role":      "Backend Engineer",
						"years_exp": 5,
						"skills":    []any{"Go", "Docker"},
					},
				},
			},
		},
	}

	var reference *Candidate

	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}

		if reference == nil {
			reference = got
			continue
		}

		if !reflect.DeepEqual(got, reference) {
			t.Fatalf("%s: normalized candidate differs from bare record: %+v vs %+v", tt.name, got, reference)
		}
	}

	if reference.ID != "c1" {
		t.Fatalf("expected id c1, got %q", reference.ID)
	}

	if reference.YearsExp != 5 {
		t.Fatalf("expected 5 years, got %d", reference.YearsExp)
	}
}

func TestNormalizeListItemWithMetadata(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"id": "c2",
		"metadata": map[string]any{
			"full_name":   "John Smith",
			"role":        "Data Engineer",
			"years_exp":   "3",
			"skills_list": "python, spark , ,aws",
			"file_source": "cv_john.pdf",
		},
	}

	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != "c2" {
		t.Fatalf("expected id c2, got %q", got.ID)
	}

	if got.YearsExp != 3 {
		t.Fatalf("expected coerced years_exp 3, got %d", got.YearsExp)
	}

	expected := []string{"python", "spark", "aws"}
	if !reflect.DeepEqual(got.Skills, expected) {
		t.Fatalf("expected skills %v, got %v", expected, got.Skills)
	}

	if got.FileSource != "cv_john.pdf" {
		t.Fatalf("unexpected file source: %q", got.FileSource)
	}
}

func TestNormalizeRejectsUnknownShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil", raw: nil},
		{name: "string", raw: "not an object"},
		{name: "number", raw: 42},
		{name: "no identifying fields", raw: map[string]any{"foo": "bar"}},
		{name: "data is not an object", raw: map[string]any{"data": "oops"}},
		{name: "empty object", raw: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(tt.raw)
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("expected ErrInvalidShape, got %v", err)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	raw := bareRecord()
	snapshot := map[string]any{}
	for k, v := range raw {
		snapshot[k] = v
	}

	if _, err := Normalize(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(raw, snapshot) {
		t.Fatalf("input mutated: %v vs %v", raw, snapshot)
	}
}

func TestNormalizeScoreScales(t *testing.T) {
	t.Parallel()

	match := map[string]any{
		"id":        "m1",
		"full_name": "Jane Doe",
		"score":     0.82,
	}

	got, err := Normalize(match)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Score == nil || got.Score.Scale != ScaleFraction {
		t.Fatalf("expected fraction score, got %+v", got.Score)
	}

	profile := map[string]any{
		"full_name":     "Jane Doe",
		"project_score": 8.5,
	}

	got, err = Normalize(profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Score == nil || got.Score.Scale != ScaleTenPoint {
		t.Fatalf("expected ten-point score, got %+v", got.Score)
	}

	if got.Score.Value != 8.5 {
		t.Fatalf("expected value 8.5, got %v", got.Score.Value)
	}
}

func TestNormalizeAllRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	raw := []any{
		map[string]any{"id": "c1", "full_name": "A"},
		map[string]any{"id": "c1", "full_name": "B"},
	}

	_, err := NormalizeAll(raw)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	raw := []any{
		map[string]any{"id": "c1", "full_name": "A", "years_exp": 2},
		map[string]any{"id": "c2", "full_name": "B", "years_exp": 4},
	}

	got, err := NormalizeAll(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Len() != 2 {
		t.Fatalf("expected 2 candidates, got %d", got.Len())
	}

	if got.FindByID("c2") == nil {
		t.Fatalf("expected to find candidate c2")
	}
}

func TestNormalizeSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		expect []string
	}{
		{
			name:   "comma string",
			input:  "Go, Docker ,  Kubernetes",
			expect: []string{"Go", "Docker", "Kubernetes"},
		},
		{
			name:   "drops empty tokens",
			input:  "Go,, ,Docker",
			expect: []string{"Go", "Docker"},
		},
		{
			name:   "string slice trimmed",
			input:  []string{" Go ", "Docker"},
			expect: []string{"Go", "Docker"},
		},
		{
			name:   "any slice",
			input:  []any{"Go", " Docker "},
			expect: []string{"Go", "Docker"},
		},
		{
			name:   "nil defaults to empty",
			input:  nil,
			expect: []string{},
		},
		{
			name:   "unsupported type defaults to empty",
			input:  12,
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeSkills(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
