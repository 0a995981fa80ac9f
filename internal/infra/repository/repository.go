package repository

import (
	"errors"

	"pantryshare/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapWriteErr classifies postgres failures into repository error kinds so the
// usecase layer can branch without seeing driver types.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case "23503":
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
