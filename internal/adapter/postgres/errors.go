package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Foreign key violations map to domain.ErrNotFound: a missing parent looks
// the same as a parent owned by someone else.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, translate(err))
}

func mapError(err error, entity string, id uuid.UUID) error {
	return MapError(err, entity, id)
}

func translate(err error) error {
	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return domain.ErrAlreadyExists
		case pgErr.Code == "23503": // foreign_key_violation
			return domain.ErrNotFound
		case pgErr.Code == "23514": // check_violation
			return domain.ErrConstraint
		case strings.HasPrefix(pgErr.Code, "22"): // data_exception class
			return dataException(pgErr)
		case isUnavailableCode(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return err
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	return err
}

// dataException reports a value the column type cannot hold as a
// validation error on that column.
func dataException(pgErr *pgconn.PgError) error {
	field := pgErr.ColumnName
	if field == "" {
		field = "input"
	}
	msg := "invalid value"
	if pgErr.Code == "22003" { // numeric_value_out_of_range
		msg = "out of range"
	}
	return domain.NewValidationError(field, msg)
}

// isUnavailable reports whether err means the database could not be reached
// rather than that it rejected the statement.
func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}

func isUnavailableCode(code string) bool {
	switch code {
	case "53300", // too_many_connections
		"57P01", // admin_shutdown
		"57P02", // crash_shutdown
		"57P03": // cannot_connect_now
		return true
	}
	return strings.HasPrefix(code, "08") // connection_exception class
}
