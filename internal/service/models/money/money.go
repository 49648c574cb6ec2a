package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is a fixed-point money amount in the smallest currency unit.
// Amounts cross the API boundary as decimal strings ("25.00") and are
// never represented as binary floats.
type Cents int64

var ErrInvalidAmount = errors.New("invalid money amount")

func (c Cents) String() string {
	return fmt.Sprintf("%d.%02d", int64(c)/100, int64(c)%100)
}

// Parse converts a non-negative decimal string with at most two fraction
// digits into Cents.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if w > (math.MaxInt64-99)/100 {
		return 0, ErrInvalidAmount
	}
	cents := w * 100

	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrInvalidAmount
		}
		f, err := strconv.Atoi(frac)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			f *= 10
		}
		cents += int64(f)
	}

	return Cents(cents), nil
}

// MarshalJSON renders the amount as a decimal string.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON accepts either a decimal string ("25.00") or a bare JSON
// number token. The token is parsed as text so repeated additions never
// accumulate binary rounding drift.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return ErrInvalidAmount
		}
		s = unquoted
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v

	return nil
}
