package candidate

// Scale discriminates the two score scales the backend uses. Search results
// carry a matching score in [0,1], uploaded profiles a composite quality
// score in [0,10]. The two must never be coerced into each other.
type Scale string

const (
	ScaleFraction Scale = "fraction"
	ScaleTenPoint Scale = "ten_point"
)

// Bucket labels, ordered from best to worst.
const (
	BucketExcellent = "excellent"
	BucketGood      = "good"
	BucketFair      = "fair"
	BucketAverage   = "average"
)

type Score struct {
	Scale Scale   `json:"scale"`
	Value float64 `json:"value"`
}

func NewFractionScore(v float64) *Score {
	return &Score{Scale: ScaleFraction, Value: v}
}

func NewTenPointScore(v float64) *Score {
	return &Score{Scale: ScaleTenPoint, Value: v}
}

// Bucket maps the score to one of the four display labels. The mapping is
// total: any real value lands in exactly one bucket, with everything below
// the lowest threshold (including negatives) reported as average.
func (s *Score) Bucket() string {
	thresholds := [3]float64{0.8, 0.6, 0.4}
	if s.Scale == ScaleTenPoint {
		thresholds = [3]float64{8, 6, 4}
	}

	switch {
	case s.Value >= thresholds[0]:
		return BucketExcellent
	case s.Value >= thresholds[1]:
		return BucketGood
	case s.Value >= thresholds[2]:
		return BucketFair
	default:
		return BucketAverage
	}
}

// Percentage renders a fractional score as a whole percentage. Ten-point
// scores are reported as-is times ten so both scales print on a 0-100 range.
func (s *Score) Percentage() int {
	if s.Scale == ScaleTenPoint {
		return int(s.Value*10 + 0.5)
	}

	return int(s.Value*100 + 0.5)
}
