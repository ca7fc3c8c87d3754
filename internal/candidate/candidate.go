package candidate

const (
	// NotAvailable is the placeholder the backend uses for missing fields.
	NotAvailable = "N/A"
)

// Candidate is the canonical record describing one parsed resume. Instances
// are snapshots produced by a fetch or upload response and are replaced
// wholesale on the next fetch.
type Candidate struct {
	ID       string `json:"id,omitempty" mapstructure:"id"`
	FullName string `json:"full_name,omitempty" mapstructure:"full_name"`
	Email    string `json:"email,omitempty" mapstructure:"email"`
	Role     string `json:"role,omitempty" mapstructure:"role"`
	YearsExp int    `json:"years_exp,omitempty" mapstructure:"years_exp"`

	Education []EducationEntry `json:"education,omitempty" mapstructure:"education"`
	Projects  []Project        `json:"projects,omitempty" mapstructure:"projects"`
	Skills    []string         `json:"skills,omitempty" mapstructure:"-"`

	// Score carries its scale so a 0-1 matching score can never be read as
	// a 0-10 quality score or vice versa.
	Score *Score `json:"score,omitempty" mapstructure:"-"`

	FileSource string `json:"file_source,omitempty" mapstructure:"file_source"`
	FileName   string `json:"file_name,omitempty" mapstructure:"file_name"`
	CreatedAt  string `json:"created_at,omitempty" mapstructure:"created_at"`
}

type EducationEntry struct {
	School string   `json:"school,omitempty" mapstructure:"school"`
	Degree string   `json:"degree,omitempty" mapstructure:"degree"`
	Major  string   `json:"major,omitempty" mapstructure:"major"`
	Time   string   `json:"time,omitempty" mapstructure:"time"`
	GPA    *float64 `json:"gpa,omitempty" mapstructure:"gpa"`
}

type Project struct {
	Name        string  `json:"name,omitempty" mapstructure:"name"`
	Description string  `json:"description,omitempty" mapstructure:"description"`
	Score       float64 `json:"score,omitempty" mapstructure:"score"`
}

type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))

	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}

	return ids
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, item := range c.Items {
		if item.ID == id {
			return item
		}
	}

	return nil
}

// DisplayName returns the candidate name with the backend placeholder for
// empty values, matching how absent fields are rendered everywhere else.
func (c *Candidate) DisplayName() string {
	if c.FullName == "" {
		return NotAvailable
	}

	return c.FullName
}
