// internal/httpserver/token.go
//
// Signed game tokens. Creating a game returns an HS256 JWT binding the
// game ID; every subsequent request presents it instead of a raw ID, so
// clients cannot poke at games they did not create. Tokens expire after
// 24 hours, comfortably past the lifetime of any live game.

package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a missing, malformed, expired, or foreign token.
var ErrInvalidToken = errors.New("invalid game token")

const tokenTTL = 24 * time.Hour

// signGameToken issues a token for the game ID.
func (s *Server) signGameToken(gameID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})
	ss, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign game token: %w", err)
	}
	return ss, nil
}

// parseGameToken verifies a token and extracts the game ID.
func (s *Server) parseGameToken(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrInvalidToken
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", ErrInvalidToken
	}
	return gid, nil
}
