package normalizer

import (
	"fmt"
	"strconv"
	"time"
)

const (
	calendarLayout = "2006-1-2"
	calendarFormat = "Mon, 02 Jan, 2006"

	// Supported calendar range, inclusive.
	MinYear = -262144
	MaxYear = 262143
)

var (
	minEpoch = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxEpoch = time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// Normalizer converts time tokens into a NormalizedTime. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	classifier *Classifier
}

func NewNormalizer() *Normalizer {
	return &Normalizer{classifier: NewClassifier(DefaultRules()...)}
}

func (n *Normalizer) Run(raw string) (NormalizedTime, error) {
	switch token := n.classifier.Classify(raw).(type) {
	case CalendarToken:
		return parseCalendarDate(token)
	case EpochToken:
		return parseEpoch(token)
	default:
		return NormalizedTime{}, fmt.Errorf("unsupported token type %T", token)
	}
}

func parseCalendarDate(token CalendarToken) (NormalizedTime, error) {
	raw := token.Raw()
	// The year layout also accepts a leading sign, which is not a 4-digit year.
	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return NormalizedTime{}, &Error{Kind: KindDateParse, Token: raw}
	}

	date, err := time.ParseInLocation(calendarLayout, raw, time.UTC)
	if err != nil {
		return NormalizedTime{}, &Error{Kind: KindDateParse, Token: raw, Err: err}
	}

	return NormalizedTime{
		UTC:  date.Format(calendarFormat),
		Unix: strconv.FormatInt(date.Unix(), 10),
	}, nil
}

func parseEpoch(token EpochToken) (NormalizedTime, error) {
	raw := token.Raw()
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return NormalizedTime{}, &Error{Kind: KindIntegerParse, Token: raw, Err: err}
	}

	if seconds < minEpoch || seconds > maxEpoch {
		return NormalizedTime{}, &Error{
			Kind:  KindOutOfRange,
			Token: raw,
			Err:   fmt.Errorf("%d is outside [%d, %d]", seconds, minEpoch, maxEpoch),
		}
	}

	return NormalizedTime{
		UTC:  formatInstant(time.Unix(seconds, 0).UTC()),
		Unix: strconv.FormatInt(seconds, 10),
	}, nil
}

// formatInstant renders t as "YYYY-MM-DD HH:MM:SS UTC". Years outside
// 0..9999 carry an explicit sign and as many digits as they need.
func formatInstant(t time.Time) string {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	var y string
	if year >= 0 && year <= 9999 {
		y = fmt.Sprintf("%04d", year)
	} else {
		y = fmt.Sprintf("%+05d", year)
	}

	return fmt.Sprintf("%s-%02d-%02d %02d:%02d:%02d UTC", y, int(month), day, hour, minute, second)
}
