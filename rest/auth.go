package rest

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const EnvJwtSecret = "JWT_SECRET"

var ErrUnauthenticated = errors.New("unauthenticated")

// Claims are minted by the host platform for the acting user.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (c Claims) UserId() (uint32, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("subject [%s]: %w", c.Subject, ErrUnauthenticated)
	}
	return uint32(id), nil
}

func secret() []byte {
	return []byte(os.Getenv(EnvJwtSecret))
}

func GenerateToken(key []byte, userId uint32, username string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func ValidateToken(key []byte, token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if !t.Valid {
		return Claims{}, ErrUnauthenticated
	}
	return claims, nil
}

type UserHandler func(userId uint32) http.HandlerFunc

// ParseUser authenticates the bearer token and passes the acting user to next.
func ParseUser(l logrus.FieldLogger, next UserHandler) http.HandlerFunc {
	return parseUser(l, secret, next)
}

func parseUser(l logrus.FieldLogger, key func() []byte, next UserHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		claims, err := ValidateToken(key(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			l.WithError(err).Debugf("Rejected bearer token.")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		userId, err := claims.UserId()
		if err != nil {
			l.WithError(err).Debugf("Rejected bearer token.")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(userId)(w, r)
	}
}
