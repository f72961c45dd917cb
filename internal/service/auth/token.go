package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/KirillBalashovIS122/SkodaExpert/internal/domain"
)

// Claims полезная нагрузка токена доступа
type Claims struct {
	jwt.RegisteredClaims

	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// generateToken выпускает подписанный токен для пользователя
func (s *Service) generateToken(principal domain.Principal, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID: principal.ID,
		Role:   principal.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	return signed, nil
}

// ParseToken проверяет подпись токена и извлекает пользователя
func (s *Service) ParseToken(tokenString string) (domain.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return domain.Principal{}, ErrInvalidToken
	}

	if !claims.Role.Valid() {
		return domain.Principal{}, ErrInvalidToken
	}

	return domain.Principal{ID: claims.UserID, Role: claims.Role}, nil
}
