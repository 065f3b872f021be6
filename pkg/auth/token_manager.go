package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims bind a token to one login session of one user. The session id
// is checked against the server-side session list on every request, so a
// signed token alone is not enough after logout.
type SessionClaims struct {
	UserID    int `json:"u_id"`
	SessionID int `json:"session_id"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secretKey string
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secretKey: secret}
}

// Generate creates a signed token for one session of userID.
func (m *TokenManager) Generate(userID, sessionID int) (string, error) {
	claims := SessionClaims{UserID: userID, SessionID: sessionID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Verify parses and validates a token and returns its session claims.
func (m *TokenManager) Verify(accessToken string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractToken pulls the token out of a request: the Authorization header
// ("Bearer <token>") is preferred, with a token query parameter as fallback
// for GET and websocket endpoints.
func ExtractToken(r *http.Request) (string, error) {
	hdr := r.Header.Get("Authorization")
	if hdr != "" {
		parts := strings.SplitN(hdr, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", errors.New("invalid Authorization header")
		}
		return parts[1], nil
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}
	return "", errors.New("missing token")
}
