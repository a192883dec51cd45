package pg

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsForeignKeyViolation(err error) bool {
	return code(err) == pgerrcode.ForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	return code(err) == pgerrcode.CheckViolation
}

func IsUniqueViolation(err error) bool {
	return code(err) == pgerrcode.UniqueViolation
}
