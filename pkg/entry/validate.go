package entry

import (
	"errors"
	"github.com/voidshard/budget/pkg/domain"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the only accepted date layout.
const DateFormat = "2006-01-02"

const (
	MinYear = 2000
	MaxYear = 2100
)

var (
	ErrInvalidDate    = errors.New("invalid date, expected a real calendar date as YYYY-MM-DD")
	ErrYearOutOfRange = errors.New("year must be between 2000 and 2100")
	ErrInvalidKind    = errors.New("invalid type, enter 'I' or 'E'")
	ErrInvalidAmount  = errors.New("invalid input, please enter a number for the amount")
	ErrZeroAmount     = errors.New("amount cannot be zero")
)

// Date checks s is an existing calendar date in YYYY-MM-DD form with a year
// in [MinYear, MaxYear] and returns it unchanged.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	if d.Year() < MinYear || d.Year() > MaxYear {
		return "", ErrYearOutOfRange
	}
	return s, nil
}

// Kind accepts "i" or "e" in any case.
func Kind(s string) (domain.Kind, error) {
	k := domain.Kind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Amount parses a number and drops its sign. Zero, after dropping the sign,
// is rejected as are NaN and infinities.
func Amount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	v = math.Abs(v)
	if v == 0 {
		return 0, ErrZeroAmount
	}
	return v, nil
}
