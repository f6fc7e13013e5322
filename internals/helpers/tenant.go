// file: internals/helpers/tenant.go
package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrSchoolIDMissing = errors.New("school_id is required")

// GetSchoolID membaca tenant dari query param.
// Scoping memang parameter-driven (bukan dari session) — mengikuti perilaku
// sistem aslinya; lihat DESIGN.md soal risiko cross-tenant.
// Menerima dua nama: school_id (utama) atau schoolId (alias klien lama).
func GetSchoolID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Query("school_id"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("schoolId"))
	}
	if raw == "" {
		return 0, ErrSchoolIDMissing
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("school_id must be a positive integer")
	}
	return uint(id), nil
}

// GetSchoolIDFromToken membaca school_id yang disimpan middleware auth di Locals.
func GetSchoolIDFromToken(c *fiber.Ctx) (uint, error) {
	if v, ok := c.Locals("school_id").(uint); ok && v != 0 {
		return v, nil
	}
	if v, ok := c.Locals("school_id").(float64); ok && v != 0 {
		return uint(v), nil
	}
	return 0, errors.New("school_id tidak ada di token")
}

// GetUserIDFromToken membaca user_id yang disimpan middleware auth di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	if v, ok := c.Locals("user_id").(uint); ok && v != 0 {
		return v, nil
	}
	if v, ok := c.Locals("user_id").(float64); ok && v != 0 {
		return uint(v), nil
	}
	return 0, errors.New("user_id tidak ada di token")
}

// GetRoleFromToken membaca role dari Locals.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_role").(string); ok {
		return v
	}
	return ""
}

// ParseIDParam membaca :id path param sebagai uint.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return uint(id), nil
}
