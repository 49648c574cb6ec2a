package payment

import (
	"database/sql/driver"
	"errors"
	"strings"
)

type Method string

// Common methods seen at the till. Callers may submit other values; the
// method is stored as an opaque string.
const (
	MethodCash    Method = "cash"
	MethodCard    Method = "card"
	MethodEWallet Method = "e-wallet"
)

var ErrEmptyMethod = errors.New("payment method is required")

func (m Method) String() string {
	return string(m)
}

func (m Method) Value() (driver.Value, error) {
	return m.String(), nil
}

func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyMethod
	}

	return Method(s), nil
}
