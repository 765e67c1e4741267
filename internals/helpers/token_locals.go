package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Konteks request diambil dari klaim JWT yang sudah dihidrasi middleware ke
// c.Locals. Tidak ada session bag global: semua getter di sini baca per-request.

// GetUserIDFromToken ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetRoleFromToken ambil role dari c.Locals("role").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("role")
	if v == nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return strings.TrimSpace(s), nil
}

// GetStudentNumberFromToken ambil student_number (hanya terisi untuk role student).
func GetStudentNumberFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("student_number")
	if v == nil {
		return "", fiber.NewError(fiber.StatusForbidden, "Student number tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusForbidden, "Student number tidak ditemukan di token")
	}
	return strings.TrimSpace(s), nil
}
