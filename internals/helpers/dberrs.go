// file: internals/helpers/dberrs.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE yang kita bedakan; sisanya jatuh ke 500.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// JsonDBError memetakan error GORM/Postgres ke envelope standar.
// - 23505 → 409 (duplicate)
// - 23503 → 404 (relasi tidak ditemukan / bukan milik tenant)
// - 23514 → 400 (check constraint)
// - gorm.ErrRecordNotFound → 404
// - sisanya → 500 dengan pesan error asli (buat diagnosa operator)
func JsonDBError(c *fiber.Ctx, err error, dupMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "record not found")
	case IsUniqueViolation(err):
		if dupMsg == "" {
			dupMsg = "duplicate value for a unique field"
		}
		return JsonError(c, fiber.StatusConflict, dupMsg)
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusNotFound, "related record not found")
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return JsonError(c, fiber.StatusBadRequest, pgErr.Message)
		}
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
