package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation = "23505"
	// uuid malformado contra coluna uuid
	pgInvalidTextRepresentation = "22P02"
)

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// isNotFound: sem linha, ou um ID que nem é uuid válido (não pode existir).
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || hasPQCode(err, pgInvalidTextRepresentation)
}
