package normalizer

// NormalizedTime is the dual-format representation returned for every token.
// Both fields are strings so sentinel values share the same shape.
type NormalizedTime struct {
	UTC  string `json:"utc"`
	Unix string `json:"unix"`
}

func (t NormalizedTime) Equal(other NormalizedTime) bool {
	return t.UTC == other.UTC && t.Unix == other.Unix
}

// Sentinel bodies written in place of a result when conversion fails.
const (
	SentinelNone       = "NONE"
	SentinelError      = "ERROR"
	SentinelOutOfRange = "OUT_OF_RANGE"
)
