package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mytutor_backend/internals/configs"
	"mytutor_backend/internals/constants"
	"mytutor_backend/internals/features/users/user/model"
)

// CreateToken terbitkan JWT HMAC berisi identitas request:
// user_id, role, dan student_number (khusus role student).
func CreateToken(u model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"role":    u.UserRole,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	if u.UserRole == constants.RoleStudent && u.UserStudentNumber != nil {
		claims["student_number"] = *u.UserStudentNumber
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
