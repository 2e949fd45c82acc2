// Package session issues and verifies the signed cookie that carries
// the logged-in actor between requests.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"agriportal/entities"
)

const CookieName = "auth"

// Lifetime matches the original cookie: one week.
const Lifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	Actor entities.Actor `json:"actor"`
	jwt.RegisteredClaims
}

func Issue(actor entities.Actor, secret string) (string, error) {
	claims := Claims{
		Actor: actor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(Lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func Parse(token, secret string) (*entities.Actor, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return &claims.Actor, nil
}

// Cookie wraps an issued token in the HttpOnly auth cookie.
func Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(Lifetime.Seconds()),
	}
}

// ExpiredCookie clears the auth cookie on logout.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{Name: CookieName, Value: "", Path: "/", HttpOnly: true, MaxAge: -1}
}
