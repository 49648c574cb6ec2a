package account

import (
	"database/sql/driver"
	"errors"
	"time"
)

type Role string

const (
	RoleCashier Role = "cashier"
	RoleStock   Role = "stock"
)

var ErrInvalidRole = errors.New("invalid account role")

func (r Role) String() string {
	return string(r)
}

func (r Role) Value() (driver.Value, error) {
	return r.String(), nil
}

func ParseRole(s string) (Role, error) {
	switch s {
	case RoleCashier.String():
		return RoleCashier, nil
	case RoleStock.String():
		return RoleStock, nil
	default:
		return "", ErrInvalidRole
	}
}

// Account is a cashier or stock-clerk login. PasswordHash is a bcrypt
// hash; the plaintext credential is never stored or returned.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
