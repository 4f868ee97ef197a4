package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrConflict   = errors.New("record changed concurrently")
	ErrOutOfRange = errors.New("numeric value out of range")
)

const (
	uniqueViolation        = "23505"
	numericValueOutOfRange = "22003"
)

// mapError translates driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return ErrDuplicate
		case numericValueOutOfRange:
			return ErrOutOfRange
		}
	}
	return err
}
