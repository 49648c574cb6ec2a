package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("conflict with stored data")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Classify maps low-level store errors onto the service error taxonomy.
// Unrecognized errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "23": // integrity constraint violation class
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Message)
		case "08": // connection exception class
			return fmt.Errorf("%w: %s", ErrStoreUnavailable, pgErr.Message)
		}
	}

	return err
}
