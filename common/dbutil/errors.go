package dbutil

import (
	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const DuplicateKeyErrorCode = "23505"

// WrapError converts a gorm or driver error into a tagged *errors.Error.
// Unique violations become Conflict, missing rows NotFound, anything else Internal.
func WrapError(err error) error {
	var pgErr *pgconn.PgError
	var sqliteErr sqlite3.Error

	if err == nil {
		return nil
	} else if _, ok := err.(*errors.Error); ok {
		return err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound.Wrap(err)
	} else if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Conflict.Explain("duplication of key").Wrap(err)
	} else if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case DuplicateKeyErrorCode:
			return errors.Conflict.
				Explain("duplication of key").
				Wrap(err)
		}
	} else if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errors.Conflict.
				Explain("duplication of key").
				Wrap(err)
		}
	}

	return errors.Internal.Wrap(err)
}
