package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError translates Postgres constraint violations into an HTTP status +
// user-facing message. Unrecognized errors come back as a 500.
func MapPGError(err error) (int, string) {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapPGCode(pgxErr.Code, pgxErr.Message)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapPGCode(string(pqErr.Code), pqErr.Message)
	}
	return http.StatusInternalServerError, "Database error"
}

func mapPGCode(code, message string) (int, string) {
	switch code {
	case "23503":
		return http.StatusBadRequest, "Referenced record not found (FK violation)."
	case "23505":
		return http.StatusConflict, "Duplicate record (unique violation)."
	default:
		return http.StatusInternalServerError, message
	}
}
