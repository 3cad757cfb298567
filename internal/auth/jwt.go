package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The signing key comes from JWT_SECRET, read when a token is issued
// or checked rather than at package init, so a value main loads from
// .env is honored. The fallback only exists so a bare local checkout
// still boots.
func jwtSecretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("scenic-area-dev-secret")
}

// GenerateToken creates a signed JWT for a logged-in identity. The
// token carries the subject id and the role so the client can attach
// it to later requests.
func GenerateToken(id *Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id.ID,
		"role": id.Role,
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(jwtSecretKey())
}

// ValidateToken parses and validates a token string, returning the
// subject id and role it was issued for.
func ValidateToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey(), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("invalid subject claim")
	}
	role, _ := claims["role"].(string)

	return int64(sub), role, nil
}
