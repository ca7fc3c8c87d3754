package candidate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	// ErrInvalidShape is returned when a payload matches none of the known
	// response shapes.
	ErrInvalidShape = errors.New("invalid response shape")
	// ErrDuplicateID is returned when a fetched collection carries the same
	// candidate id twice. Duplicates are an upstream fault, never merged.
	ErrDuplicateID = errors.New("duplicate candidate id")
)

// Normalize converts a raw API payload into the canonical Candidate. The
// backend answers in several shapes depending on the endpoint and version:
// a double wrapper (response with a data field holding another wrapper), a
// single wrapper, or the bare record. List items additionally nest their
// fields under a metadata object with skills as a comma-joined string.
//
// The input is never mutated and nothing panics across this boundary: every
// failure comes back as an error wrapping ErrInvalidShape or a decode error.
func Normalize(raw any) (*Candidate, error) {
	record, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	return decode(record)
}

// NormalizeAll converts a list of raw items, rejecting duplicate ids.
func NormalizeAll(raw []any) (*Candidates, error) {
	seen := make(map[string]struct{}, len(raw))
	items := make([]*Candidate, 0, len(raw))

	for i, item := range raw {
		c, err := Normalize(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		if c.ID != "" {
			if _, ok := seen[c.ID]; ok {
				return nil, fmt.Errorf("item %d: %w: %s", i, ErrDuplicateID, c.ID)
			}
			seen[c.ID] = struct{}{}
		}

		items = append(items, c)
	}

	return &Candidates{Items: items}, nil
}

// unwrap peels at most two data envelopes and verifies that what remains
// looks like a candidate record.
func unwrap(raw any) (map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidShape)
	}

	id, hasTopID := m["id"]

	// Peel up to two data envelopes. Upload responses keep the id on the
	// envelope rather than the record, so remember it as we descend.
	for range [2]struct{}{} {
		inner, ok := m["data"]
		if !ok {
			break
		}

		wrapper, ok := inner.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: data field is not an object", ErrInvalidShape)
		}

		if envID, ok := m["id"]; ok {
			id, hasTopID = envID, true
		}

		m = wrapper
	}

	if hasTopID {
		if _, ok := m["id"]; !ok {
			m = withField(m, "id", id)
		}
	}

	if meta, ok := m["metadata"].(map[string]any); ok {
		merged := make(map[string]any, len(meta)+1)
		for k, v := range meta {
			merged[k] = v
		}
		if _, ok := merged["id"]; !ok && hasTopID {
			merged["id"] = id
		}
		if score, ok := m["score"]; ok {
			merged["score"] = score
		}
		m = merged
	}

	if !isRecord(m) {
		return nil, fmt.Errorf("%w: no identifying fields", ErrInvalidShape)
	}

	return m, nil
}

func isRecord(m map[string]any) bool {
	for _, key := range []string{"full_name", "role", "name"} {
		if _, ok := m[key]; ok {
			return true
		}
	}

	return false
}

func decode(record map[string]any) (*Candidate, error) {
	var c Candidate

	cfg := &mapstructure.DecoderConfig{
		Result:           &c,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build candidate decoder: %w", err)
	}

	if err := decoder.Decode(sanitized(record)); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}

	if c.YearsExp < 0 {
		c.YearsExp = 0
	}

	c.Skills = NormalizeSkills(skillsField(record))
	c.Score = scoreField(record)

	return &c, nil
}

// sanitized shallow-copies the record without the fields that need bespoke
// handling, so the weakly-typed decode cannot choke on them and the caller's
// map stays untouched.
func sanitized(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		switch k {
		case "skills", "skills_list", "score", "project_score":
			continue
		case "years_exp":
			out[k] = asInt(v)
		default:
			out[k] = v
		}
	}

	return out
}

func skillsField(record map[string]any) any {
	if v, ok := record["skills"]; ok {
		return v
	}

	return record["skills_list"]
}

func scoreField(record map[string]any) *Score {
	if v, ok := record["score"]; ok {
		if f, ok := asFloat(v); ok {
			return NewFractionScore(f)
		}
	}

	if v, ok := record["project_score"]; ok {
		if f, ok := asFloat(v); ok {
			return NewTenPointScore(f)
		}
	}

	return nil
}

// NormalizeSkills collapses the two upstream skill encodings into one
// trimmed sequence: a comma-joined string is split and cleaned, an existing
// sequence gets a per-element trim, anything else becomes an empty slice.
// Order is preserved and empty tokens are dropped.
func NormalizeSkills(raw any) []string {
	switch v := raw.(type) {
	case string:
		return splitSkills(v)
	case []string:
		return trimSkills(v)
	case []any:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tokens = append(tokens, s)
			}
		}
		return trimSkills(tokens)
	default:
		return []string{}
	}
}

func splitSkills(joined string) []string {
	return trimSkills(strings.Split(joined, ","))
}

func trimSkills(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

func withField(m map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = value

	return out
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		var parsed int
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &parsed); err == nil {
			return parsed
		}
	}

	return 0
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}

	return 0, false
}
