package postgres

import (
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/errors"

	"gorm.io/gorm"
)

// The helpers below rely on gorm.Config.TranslateError, which New enables.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError maps constraint failures of an insert to a database
// error carrying the given details.
func translateWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, details+": invalid reference")
	case isCheckConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, details+": check constraint violated")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
