package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is a directory record. The ID is assigned by the store on creation.
type Employee struct {
	ID       int64  `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Position string `json:"position,omitempty" bson:"position,omitempty"`
	Salary   Money  `json:"salary" bson:"salary"`
}

// Money is a fixed-point amount with two fractional digits, stored as cents.
// It marshals to a plain JSON number ("5200.50") and rejects inputs carrying
// more precision than the column holds.
type Money int64

func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	parsed, err := ParseMoney(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoney converts a decimal string such as "5200", "5200.5" or "5200.50"
// into cents.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("money: empty value")
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, errors.New("money: more than two fractional digits")
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}

	cents := units*100 + frac
	if neg {
		cents = -cents
	}
	return Money(cents), nil
}
